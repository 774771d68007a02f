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

// Package config loads corners' configuration file. The configuration is
// read once at startup and converted into the immutable values used by
// the game tree and the searches.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/corners/pkg/common"
	"laptudirm.com/x/corners/pkg/game"
	"laptudirm.com/x/corners/pkg/render"
	"laptudirm.com/x/corners/pkg/search"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s", e.err)
}

type TeamConfig struct {
	Color string `yaml:"color"`
}

type Config struct {
	// Size of the square board.
	Size int `yaml:"size"`

	// Movement offsets as [row, col] pairs.
	Deltas [][2]int `yaml:"deltas,flow"`

	MaxDepth  int    `yaml:"max-depth"`
	Algorithm string `yaml:"algorithm"`
	Heuristic string `yaml:"heuristic"`

	// Start is the starting board of new games. The default position is
	// used if it is empty.
	Start string `yaml:"start,omitempty"`

	// Number of plies after which a self-play game is adjudicated.
	MoveLimit int `yaml:"move-limit"`

	// Display attributes keyed by marker ("0", "1", "2").
	Teams map[string]TeamConfig `yaml:"teams"`

	path string
}

// Default returns the reference configuration.
func Default() *Config {
	defaults := game.DefaultConfig()

	config := &Config{
		Size:      defaults.Size,
		MaxDepth:  defaults.MaxDepth,
		Algorithm: string(search.AlphaBetaAlgorithm),
		Heuristic: "occupancy",
		MoveLimit: 200,
		Teams:     map[string]TeamConfig{},
	}

	for _, delta := range defaults.Deltas {
		config.Deltas = append(config.Deltas, [2]int{delta.Row, delta.Col})
	}

	for team, style := range defaults.Teams {
		config.Teams[game.Team(team).String()] = TeamConfig{Color: style.Color}
	}

	return config
}

// Load reads the configuration file at the given path on top of the
// defaults. If the path is empty, the file is searched for in the XDG
// configuration directories and the defaults are used if there is none.
func Load(path string) (*Config, error) {
	config := Default()

	if path == "" {
		found, err := xdg.SearchConfigFile(common.ConfigFile)
		if err != nil {
			logrus.Debug("no configuration file found, using defaults")
			return config, nil
		}

		path = found
	}

	logrus.WithField("path", path).Debug("loading configuration file")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("load config: %s: %w", path, err)
	}

	config.path = path
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Path returns the file the configuration was loaded from, or an empty
// string if it holds the defaults.
func (config *Config) Path() string {
	return config.path
}

func (config *Config) Validate() error {
	if config.Size < 2 || config.Size > 26 {
		return &InvalidConfig{fmt.Sprintf("board size %d not in [2, 26]", config.Size)}
	}

	if len(config.Deltas) == 0 {
		return &InvalidConfig{"no movement deltas"}
	}

	for _, delta := range config.Deltas {
		if delta == [2]int{0, 0} {
			return &InvalidConfig{"zero movement delta"}
		}
	}

	if config.MaxDepth < 1 {
		return &InvalidConfig{fmt.Sprintf("search depth %d is not positive", config.MaxDepth)}
	}

	if config.MoveLimit <= 0 {
		return &InvalidConfig{fmt.Sprintf("move limit %d is not positive", config.MoveLimit)}
	}

	if _, err := search.ParseAlgorithm(config.Algorithm); err != nil {
		return &InvalidConfig{err.Error()}
	}

	if _, err := search.NewEvaluator(config.Heuristic); err != nil {
		return &InvalidConfig{err.Error()}
	}

	for marker, team := range config.Teams {
		if _, err := game.NewTeam(marker); err != nil {
			return &InvalidConfig{err.Error()}
		}

		if !render.ValidColor(team.Color) {
			return &InvalidConfig{fmt.Sprintf("unknown color %q for marker %s", team.Color, marker)}
		}
	}

	if _, err := config.StartBoard(); err != nil {
		return &InvalidConfig{err.Error()}
	}

	return nil
}

// Game converts the configuration into the game configuration passed to
// the game tree and the searches.
func (config *Config) Game() *game.Config {
	gameConfig := game.DefaultConfig()
	gameConfig.Size = config.Size
	gameConfig.MaxDepth = config.MaxDepth

	gameConfig.Deltas = nil
	for _, delta := range config.Deltas {
		gameConfig.Deltas = append(gameConfig.Deltas, game.Delta{Row: delta[0], Col: delta[1]})
	}

	for marker, team := range config.Teams {
		if t, err := game.NewTeam(marker); err == nil {
			gameConfig.Teams[t] = game.Style{Color: team.Color}
		}
	}

	return gameConfig
}

// StartBoard returns the configured starting board.
func (config *Config) StartBoard() (game.Board, error) {
	if config.Start == "" {
		return config.Game().StartBoard(), nil
	}

	board, err := game.ParseBoard(config.Start)
	if err != nil {
		return nil, err
	}

	if board.Size() != config.Size {
		return nil, fmt.Errorf("start board is %dx%d, expected size %d", board.Size(), board.Size(), config.Size)
	}

	return board, nil
}

// Searcher returns a searcher using the configured algorithm and heuristic
// on the given game configuration.
func (config *Config) Searcher(gameConfig *game.Config) (*search.Searcher, error) {
	algorithm, err := search.ParseAlgorithm(config.Algorithm)
	if err != nil {
		return nil, err
	}

	evaluate, err := search.NewEvaluator(config.Heuristic)
	if err != nil {
		return nil, err
	}

	searcher := search.New(gameConfig, algorithm)
	searcher.Evaluate = evaluate
	return searcher, nil
}

// Marshal returns the configuration in its file format.
func (config *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(config)
}

// Init writes the configuration to the given path, or to the default
// configuration file if the path is empty. An existing file is left
// untouched. It returns the path of the file.
func (config *Config) Init(path string) (string, error) {
	if path == "" {
		var err error
		if path, err = xdg.ConfigFile(common.ConfigFile); err != nil {
			return "", err
		}
	}

	if err := common.TryMkdir(filepath.Dir(path)); err != nil {
		return "", err
	}

	data, err := config.Marshal()
	if err != nil {
		return "", err
	}

	return path, common.TryCreate(path, data)
}
