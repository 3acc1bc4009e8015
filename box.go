package main

// greenWindow is the number of most recently absorbed weights a green
// box averages over when scoring.
const greenWindow = 3

// A box absorbs token weights, adding each to its own total weight, and
// emits a score after every absorption. Green and blue boxes share this
// shape but score differently.
type box interface {
	absorb(tokenWeight float64) float64
	totalWeight() float64
}

type greenBox struct {
	weight float64
	// recent holds the up to greenWindow most recently absorbed
	// weights, oldest first.
	recent []float64
}

func newGreenBox(initialWeight float64) *greenBox {
	return &greenBox{weight: initialWeight}
}

// absorb scores the square of the mean of the most recently absorbed
// weights, including tokenWeight (all of them while there are fewer
// than greenWindow).
func (b *greenBox) absorb(tokenWeight float64) float64 {
	b.weight += tokenWeight
	b.recent = append(b.recent, tokenWeight)
	if len(b.recent) > greenWindow {
		b.recent = b.recent[1:]
	}
	var sum float64
	for _, w := range b.recent {
		sum += w
	}
	mean := sum / float64(len(b.recent))
	return mean * mean
}

func (b *greenBox) totalWeight() float64 { return b.weight }

type blueBox struct {
	weight float64
	// smallest and largest absorbed weights; meaningless until
	// absorbed is set by the first absorption.
	smallest, largest float64
	absorbed          bool
}

func newBlueBox(initialWeight float64) *blueBox {
	return &blueBox{weight: initialWeight}
}

// absorb scores Cantor's pairing function of the smallest and largest
// weights absorbed so far. The first absorbed weight is both; a weight
// between the current bounds leaves the score unchanged.
func (b *blueBox) absorb(tokenWeight float64) float64 {
	b.weight += tokenWeight
	switch {
	case !b.absorbed:
		b.smallest, b.largest = tokenWeight, tokenWeight
		b.absorbed = true
	case tokenWeight < b.smallest:
		b.smallest = tokenWeight
	case tokenWeight > b.largest:
		b.largest = tokenWeight
	}
	return pairing(b.smallest, b.largest)
}

func (b *blueBox) totalWeight() float64 { return b.weight }

// pairing is Cantor's pairing function, e.g. pairing(0, 1) = 2.
func pairing(a, b float64) float64 {
	return (a+b)*(a+b+1)/2 + b
}
