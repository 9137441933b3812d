package sqlite

import (
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"math"

	sqlite "modernc.org/sqlite"
)

// distanceFunction is the SQL name of the cosine distance function.
const distanceFunction = "vector_distance_cos"

// registerVectorFunctions registers the cosine distance function with the
// driver so it is available on connections opened afterwards. The driver
// rejects duplicate registrations, which makes repeat calls no-ops.
func registerVectorFunctions() {
	_ = sqlite.RegisterDeterministicScalarFunction(distanceFunction, 2, vectorDistanceCos)
}

// vectorDistanceCos implements vector_distance_cos(a, b) over embedding
// blobs. It returns 1 - cosine_similarity, so identical directions score
// 0 and orthogonal ones score 1.
//
// Pairs with no meaningful angle (either side NULL, zero magnitude, or
// mismatched dimensions) score 1 instead of failing the query, so one bad
// row cannot break ranking for the rest of the table.
func vectorDistanceCos(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("%s: expected 2 arguments, got %d", distanceFunction, len(args))
	}

	a, err := asEmbedding(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asEmbedding(args[1])
	if err != nil {
		return nil, err
	}

	return cosineDistance(a, b), nil
}

// asEmbedding interprets a SQL value as an embedding vector. NULL maps to
// a nil vector, which cosineDistance treats as unrankable.
func asEmbedding(arg driver.Value) ([]float32, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		return decodeEmbedding(v)
	default:
		return nil, fmt.Errorf("%s: unsupported argument type %T, want BLOB", distanceFunction, arg)
	}
}

// cosineDistance computes 1 - cosine_similarity for two vectors, or 1
// when the pair has no defined angle.
func cosineDistance(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 1
	}

	var dot, magA, magB float64
	for i := range a {
		va := float64(a[i])
		vb := float64(b[i])
		dot += va * vb
		magA += va * va
		magB += vb * vb
	}

	if magA == 0 || magB == 0 {
		return 1
	}

	return 1 - dot/(math.Sqrt(magA)*math.Sqrt(magB))
}

// encodeEmbedding converts a vector to its stored form: consecutive
// little-endian float32 values with no length prefix.
func encodeEmbedding(embedding []float32) []byte {
	if len(embedding) == 0 {
		return nil
	}
	buf := make([]byte, len(embedding)*4)
	for i, f := range embedding {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// decodeEmbedding converts a stored blob back to a vector.
func decodeEmbedding(data []byte) ([]float32, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("invalid embedding blob length %d (not a multiple of 4)", len(data))
	}

	embedding := make([]float32, len(data)/4)
	for i := range embedding {
		embedding[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return embedding, nil
}
