// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package arena

import (
	"fmt"
	"strings"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Default paths of the input results file and the rendered charts, all
// relative to the working directory.
const (
	DefaultInput        = "results.txt"
	DefaultResultsChart = "results.png"
	DefaultScoresChart  = "scores.png"
)

// Config holds the file paths arena works with.
type Config struct {
	Input        string
	ResultsChart string
	ScoresChart  string
}

// LoadConfig resolves arena's configuration. Values are taken, in order of
// precedence, from the changed flags, ARENA_* environment variables, the
// configuration file, and finally the defaults. If file is empty, the
// configuration file is searched for in the XDG config directories and
// is not required to exist.
func LoadConfig(file string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("input", DefaultInput)
	v.SetDefault("results-chart", DefaultResultsChart)
	v.SetDefault("scores-chart", DefaultScoresChart)

	v.SetEnvPrefix("arena")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file == "" {
		if found, err := xdg.SearchConfigFile(ConfigFile); err == nil {
			file = found
		}
	}

	if file != "" {
		logrus.WithField("file", file).Debug("Reading configuration file")

		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Paths extracts the file paths from a resolved configuration.
func Paths(v *viper.Viper) Config {
	return Config{
		Input:        v.GetString("input"),
		ResultsChart: v.GetString("results-chart"),
		ScoresChart:  v.GetString("scores-chart"),
	}
}
