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

package game

import "fmt"

// Team is the occupancy marker of a single cell. The zero value is an
// empty cell, so a freshly allocated Board is empty.
type Team uint8

const (
	Empty Team = iota
	TeamA
	TeamB

	TeamN = 3
)

// Other returns the opponent of the given team. It panics for Empty or an
// undefined marker since a node without a valid side to move is a bug in
// tree construction.
func (team Team) Other() Team {
	switch team {
	case TeamA:
		return TeamB
	case TeamB:
		return TeamA
	default:
		panic(fmt.Sprintf("game: no opponent for team %q", team.String()))
	}
}

// IsPlayer reports whether the marker belongs to one of the two teams.
func (team Team) IsPlayer() bool {
	return team == TeamA || team == TeamB
}

// String returns the single character marker of the team.
func (team Team) String() string {
	switch team {
	case Empty:
		return "0"
	case TeamA:
		return "1"
	case TeamB:
		return "2"
	default:
		return "?"
	}
}

// NewTeam parses a single character marker.
func NewTeam(marker string) (Team, error) {
	switch marker {
	case "0":
		return Empty, nil
	case "1":
		return TeamA, nil
	case "2":
		return TeamB, nil
	default:
		return Empty, fmt.Errorf("new team: invalid marker %q", marker)
	}
}
