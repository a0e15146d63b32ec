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

// Package results reads the results files written by the arena at the end
// of a match between two engines.
package results

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/arena/pkg/outcome"
)

// Prefix marks the line of a results file which lists the game outcomes.
const Prefix = "Results =>"

// Prefixes of the optional records written by the arena.
const (
	PredictionPrefix = "Prediction Accuracy =>"
	TimeLossMarker   = " losses on time"
)

// PlayersLine is the (zero based) index of the line naming the players.
const PlayersLine = 2

var (
	ErrMissingResults = errors.New("missing results line")
	ErrMissingPlayers = errors.New("missing players line")
)

// ParseError is returned when a token on the results line is not an integer.
type ParseError struct {
	Line  int // one based line number
	Token string
	Err   error
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("line %d: invalid outcome %q", err.Line, err.Token)
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

// File is the information extracted from an arena results file.
type File struct {
	// Players is the raw line naming the players, e.g. "Mess vs Stash".
	Players string

	// Names are the names of player 1 and 2, split out of Players if it
	// has the "<engine1> vs <engine2>" form.
	Names [2]string

	// Games is the number of games the arena claims were played, or zero
	// if the file has no "Games played" header.
	Games int

	Outcomes []outcome.Outcome

	// Prediction is the arena's record of how often the game result was
	// predicted correctly, nil if the file has none.
	Prediction *Prediction

	// TimeLosses lists the games each engine lost on time, in the order
	// the file lists them.
	TimeLosses []TimeLoss
}

// Prediction is the "Prediction Accuracy => successes/attempts" record.
type Prediction struct {
	Successes int `yaml:"successes"`
	Attempts  int `yaml:"attempts"`
}

// Accuracy returns the fraction of successful predictions.
func (prediction Prediction) Accuracy() float64 {
	if prediction.Attempts == 0 {
		return 0
	}

	return float64(prediction.Successes) / float64(prediction.Attempts)
}

// TimeLoss is an "<engine> losses on time : N" record.
type TimeLoss struct {
	Engine string `yaml:"engine"`
	Losses int    `yaml:"losses"`
}

// Load reads the whole results file at path and parses it.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"file":  path,
		"bytes": len(data),
	}).Debug("Read results file")

	file, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("load results: %s: %w", path, err)
	}

	return file, nil
}

// Parse parses a results file from the given reader. If more than one line
// holds results, the last one is used.
func Parse(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}

	// A final newline terminates the last line, it doesn't start a new one.
	if n := len(lines); lines[n-1] == "" {
		lines = lines[:n-1]
	}

	if len(lines) <= PlayersLine {
		return nil, ErrMissingPlayers
	}

	var file File
	file.Players = strings.TrimSpace(lines[PlayersLine])
	file.Names = splitNames(file.Players)

	found := false
	for n, line := range lines {
		switch {
		case strings.HasPrefix(line, Prefix):
			file.Outcomes, err = parseOutcomes(line[len(Prefix):], n+1)
			if err != nil {
				return nil, err
			}
			found = true

		case strings.HasPrefix(line, "Games played"):
			_, count, _ := strings.Cut(line, ":")
			if file.Games, err = strconv.Atoi(strings.TrimSpace(count)); err != nil {
				logrus.WithField("line", line).Debug("Ignoring malformed games header")
				file.Games = 0
			}

		case strings.HasPrefix(line, PredictionPrefix):
			file.Prediction = parsePrediction(line[len(PredictionPrefix):])

		case strings.Contains(line, TimeLossMarker):
			engine, count, _ := strings.Cut(line, TimeLossMarker)
			losses, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(count), ":")))
			if err != nil {
				logrus.WithField("line", line).Debug("Ignoring malformed time loss record")
				continue
			}

			file.TimeLosses = append(file.TimeLosses, TimeLoss{
				Engine: strings.TrimSpace(engine),
				Losses: losses,
			})
		}
	}

	if !found {
		return nil, ErrMissingResults
	}

	if file.Games != 0 && file.Games != len(file.Outcomes) {
		logrus.WithFields(logrus.Fields{
			"header":   file.Games,
			"outcomes": len(file.Outcomes),
		}).Warn("Number of games played does not match the results")
	}

	return &file, nil
}

func parseOutcomes(list string, line int) ([]outcome.Outcome, error) {
	tokens := strings.Fields(list)
	outcomes := make([]outcome.Outcome, len(tokens))
	for i, token := range tokens {
		value, err := strconv.Atoi(token)
		switch {
		case errors.Is(err, strconv.ErrRange):
			// A valid integer too large for an int is neither a draw nor
			// a first side win, which leaves only one meaning for it.
			value = int(outcome.SecondWins)
		case err != nil:
			return nil, &ParseError{Line: line, Token: token, Err: err}
		}

		outcomes[i] = outcome.Outcome(value)
	}

	return outcomes, nil
}

func parsePrediction(record string) *Prediction {
	successes, attempts, found := strings.Cut(strings.TrimSpace(record), "/")
	if !found {
		return nil
	}

	var prediction Prediction
	var err1, err2 error
	prediction.Successes, err1 = strconv.Atoi(strings.TrimSpace(successes))
	prediction.Attempts, err2 = strconv.Atoi(strings.TrimSpace(attempts))
	if err1 != nil || err2 != nil {
		logrus.WithField("record", record).Debug("Ignoring malformed prediction record")
		return nil
	}

	return &prediction
}

func splitNames(players string) [2]string {
	if engine1, engine2, found := strings.Cut(players, " vs "); found {
		engine1, engine2 = strings.TrimSpace(engine1), strings.TrimSpace(engine2)
		if engine1 != "" && engine2 != "" {
			return [2]string{engine1, engine2}
		}
	}

	return [2]string{"Player 1", "Player 2"}
}
