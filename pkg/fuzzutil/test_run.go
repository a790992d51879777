package fuzzutil

import "math/rand"

// Step is a single unit of work in a fuzz-driven property test - typically
// one mutation (insert/remove/query) followed by a consistency check
// against a parallel, obviously-correct model.
type Step interface {
	DoStep()
}

// TestRun decodes a byte slice into a sequence of Steps up front and then
// executes them in order. Decoding everything before running keeps a single
// step's DoStep free to assume the whole corpus entry isn't needed anymore.
type TestRun struct {
	steps []Step
}

func NewTestRun(bytes []byte, stepMaker func(*ByteConsumer) Step) *TestRun {
	tr := &TestRun{
		steps: make([]Step, 0),
	}
	byteConsumer := NewByteConsumer(bytes)

	for byteConsumer.Len() > 0 {
		step := stepMaker(byteConsumer)
		tr.steps = append(tr.steps, step)
	}
	return tr
}

func (t *TestRun) Run() {
	for _, step := range t.steps {
		step.DoStep()
	}
}

// MakeRandomTestCases returns a handful of deterministically-seeded random
// byte slices of varying length, suitable as f.Add seed corpus entries.
func MakeRandomTestCases() [][]byte {
	r := rand.New(rand.NewSource(1))
	return [][]byte{
		{},
		randomBytes(r, 1),
		randomBytes(r, 10),
		randomBytes(r, 50),
		randomBytes(r, 100),
		randomBytes(r, 500),
		randomBytes(r, 1000),
		randomBytes(r, 5000),
	}
}

func randomBytes(r *rand.Rand, size int) []byte {
	bytes := make([]byte, size)
	r.Read(bytes)
	return bytes
}
