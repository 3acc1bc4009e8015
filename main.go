package main

import (
	"fmt"
	"log"
)

// box game:
// components:
// - boxes: two green, two blue; each absorbs token weights into its own
//   total weight and emits a score per absorption
//   - green scores the square of the mean of the 3 most recently
//     absorbed weights (all of them while there are fewer than 3)
//   - blue scores Cantor's pairing function of the smallest and largest
//     weight absorbed so far
// - players: A and B, alternating turns, A first
// - turn: the acting player feeds the next input weight to the box with
//   the smallest current weight and collects the score
//
// when the input weights run out the player with the highest score wins.

type player struct {
	score float64
}

// takeTurn lets the box with the smallest current weight absorb
// tokenWeight and adds the resulting score to the player's total.
// Ties between equally light boxes go to the earliest one.
func (p *player) takeTurn(tokenWeight float64, boxes []box) {
	lightest := boxes[0]
	for _, b := range boxes[1:] {
		if b.totalWeight() < lightest.totalWeight() {
			lightest = b
		}
	}
	p.score += lightest.absorb(tokenWeight)
}

type game struct {
	boxes   []box
	players [2]*player
}

func newGame() *game {
	return &game{
		boxes: []box{
			newGreenBox(0.0),
			newGreenBox(0.1),
			newBlueBox(0.2),
			newBlueBox(0.3),
		},
		players: [2]*player{new(player), new(player)},
	}
}

// play runs a full game over inputWeights, consuming each weight on one
// turn, in order, and returns the final scores for players A and B. An
// empty input means zero turns and two zero scores.
func play(inputWeights []uint32) (float64, float64) {
	g := newGame()
	for i, w := range inputWeights {
		g.players[i%2].takeTurn(float64(w), g.boxes)
	}
	return g.players[0].score, g.players[1].score
}

func main() {
	log.SetFlags(0)

	inputs := []uint32{1, 1, 2, 3, 5, 8, 13, 21}
	scoreA, scoreB := play(inputs)
	fmt.Printf("Scores: player A %v, player B %v\n", scoreA, scoreB)
	switch {
	case scoreA > scoreB:
		log.Print("Player A wins.")
	case scoreB > scoreA:
		log.Print("Player B wins.")
	default:
		log.Print("Draw.")
	}
}
