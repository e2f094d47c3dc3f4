// SPDX-License-Identifier: MIT

package dataset_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dapfront/dataset"
	"github.com/katalvlaran/dapfront/matrix"
)

func TestGenerate_Shapes(t *testing.T) {
	for _, s := range dataset.Strategies() {
		in, err := dataset.Generate(6, s, dataset.NewRand(11))
		require.NoError(t, err, s)
		require.NoError(t, in.Validate(), s)

		for i := 0; i < in.N; i++ {
			assert.Equal(t, 0.0, in.D[i][i], "%s diagonal", s)
			for j := 0; j < in.N; j++ {
				assert.GreaterOrEqual(t, in.G[i][j], 1.0)
				assert.LessOrEqual(t, in.G[i][j], float64(dataset.MaxCost))
				assert.Equal(t, in.D[i][j], in.D[j][i], "%s symmetry", s)
				assert.GreaterOrEqual(t, in.D[i][j], 0.0)
			}
		}

		_, _, err = in.Matrices()
		require.NoError(t, err, s)
	}
}

func TestGenerate_StrategyValues(t *testing.T) {
	in, err := dataset.Generate(5, dataset.Uniform, dataset.NewRand(1))
	require.NoError(t, err)
	assert.Equal(t, 1.0, in.D[0][4])

	in, err = dataset.Generate(8, dataset.Disjoint, dataset.NewRand(2))
	require.NoError(t, err)
	for i := range in.D {
		for j := range in.D[i] {
			assert.Contains(t, []float64{0, 1}, in.D[i][j])
		}
	}

	in, err = dataset.Generate(8, dataset.Distance, dataset.NewRand(3))
	require.NoError(t, err)
	for i := range in.D {
		for j := range in.D[i] {
			assert.LessOrEqual(t, in.D[i][j], 142.0) // diagonal of the square
		}
	}
}

func TestGenerate_Errors(t *testing.T) {
	_, err := dataset.Generate(0, dataset.Uniform, nil)
	assert.ErrorIs(t, err, dataset.ErrBadSize)

	_, err = dataset.Generate(3, dataset.Strategy("zigzag"), nil)
	assert.ErrorIs(t, err, dataset.ErrUnknownStrategy)
}

func TestGenerateSet_DeterministicAndIndependent(t *testing.T) {
	a, err := dataset.GenerateSet([]int{4, 8}, dataset.Strategies(), 2, 9)
	require.NoError(t, err)
	require.Len(t, a, 2*4*2)
	assert.Equal(t, "disjoint_div_4_0", a[0].Name)

	b, err := dataset.GenerateSet([]int{8}, []dataset.Strategy{dataset.Random}, 2, 9)
	require.NoError(t, err)

	var fromA *dataset.Instance
	for _, in := range a {
		if in.Name == "random_div_8_1" {
			fromA = in
		}
	}
	require.NotNil(t, fromA)
	assert.Equal(t, fromA, b[1])
}

func TestParseStrategy(t *testing.T) {
	s, err := dataset.ParseStrategy("distance_div")
	require.NoError(t, err)
	assert.Equal(t, dataset.Distance, s)

	s, err = dataset.ParseStrategy(" Random ")
	require.NoError(t, err)
	assert.Equal(t, dataset.Random, s)

	_, err = dataset.ParseStrategy("gaussian")
	assert.ErrorIs(t, err, dataset.ErrUnknownStrategy)
}

func TestEncodeDecode(t *testing.T) {
	in, err := dataset.Generate(3, dataset.Random, dataset.NewRand(5))
	require.NoError(t, err)
	in.Name = dataset.Name(dataset.Random, 3, 0)

	var buf bytes.Buffer
	require.NoError(t, dataset.Encode(&buf, in))
	assert.Contains(t, buf.String(), "name: random_div_3_0")

	out, err := dataset.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := dataset.Decode(strings.NewReader("n: 2\ng: [[1, 2]]\nd: [[0, 1], [1, 0]]\n"))
	assert.ErrorIs(t, err, dataset.ErrMalformed)

	_, err = dataset.Decode(strings.NewReader(""))
	assert.ErrorIs(t, err, dataset.ErrMalformed)

	in := &dataset.Instance{Name: "asym", N: 2, G: [][]float64{{1, 1}, {1, 1}}, D: [][]float64{{0, 1}, {2, 0}}}
	_, _, err = in.Matrices()
	assert.ErrorIs(t, err, dataset.ErrMalformed)
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	in, err := dataset.Generate(4, dataset.Disjoint, dataset.NewRand(8))
	require.NoError(t, err)
	in.Name = dataset.Name(dataset.Disjoint, 4, 7)

	path, err := dataset.Save(dir, in)
	require.NoError(t, err)
	assert.FileExists(t, path)

	got, err := dataset.Load(dir, in.Name)
	require.NoError(t, err)
	assert.Equal(t, in, got)

	_, err = dataset.Load(dir, "missing")
	assert.Error(t, err)
}
