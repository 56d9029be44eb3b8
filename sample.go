package bezier3d

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gogpu/bezier3d/internal/parallel"
)

// DefaultSampleCount is the number of polyline samples used when the caller
// has no preference.
const DefaultSampleCount = 100

// minChunk is the smallest number of samples handed to one worker.
const minChunk = 64

// Evaluate tessellates the cubic Bézier curve defined by four control points
// into sampleCount points at t_i = i/(sampleCount-1).
//
// The first sample equals points[0] and the last equals points[3] exactly.
// It fails with ErrInvalidArgument if len(points) != 4 or sampleCount < 2.
func Evaluate(points []Point3, sampleCount int) ([]Point3, error) {
	curve, err := curveFor(points, sampleCount)
	if err != nil {
		return nil, err
	}
	out := make([]Point3, sampleCount)
	sampleRange(curve, out, 0, sampleCount)
	return out, nil
}

// EvaluateParallel is Evaluate with the parameter range split into chunks
// evaluated on a worker pool. The result is identical to Evaluate.
//
// workers <= 0 uses GOMAXPROCS. Cancelling ctx abandons chunks that have not
// started and returns ctx.Err().
func EvaluateParallel(ctx context.Context, points []Point3, sampleCount, workers int) ([]Point3, error) {
	curve, err := curveFor(points, sampleCount)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()

	out := make([]Point3, sampleCount)
	chunk := max(minChunk, (sampleCount+pool.Workers()-1)/pool.Workers())

	var jobs []func()
	for lo := 0; lo < sampleCount; lo += chunk {
		hi := min(lo+chunk, sampleCount)
		jobs = append(jobs, func() { sampleRange(curve, out, lo, hi) })
	}

	Logger().Debug("bezier3d: parallel evaluate",
		slog.Int("samples", sampleCount),
		slog.Int("chunks", len(jobs)),
		slog.Int("workers", pool.Workers()))

	if err := pool.Run(ctx, jobs); err != nil {
		return nil, err
	}
	return out, nil
}

// ParameterAt returns t for sample i of n: i/(n-1), with the last sample
// pinned to exactly 1.
func ParameterAt(i, n int) float64 {
	if i == n-1 {
		return 1
	}
	return float64(i) / float64(n-1)
}

func curveFor(points []Point3, sampleCount int) (CubicBez3, error) {
	cp, err := NewControlPoints(points)
	if err != nil {
		return CubicBez3{}, err
	}
	if sampleCount < 2 {
		return CubicBez3{}, fmt.Errorf("%w: sample count %d, need at least 2", ErrInvalidArgument, sampleCount)
	}
	return cp.Curve(), nil
}

// sampleRange fills out[lo:hi] with curve samples. Each sample depends only
// on its own index.
func sampleRange(curve CubicBez3, out []Point3, lo, hi int) {
	n := len(out)
	for i := lo; i < hi; i++ {
		out[i] = curve.Eval(ParameterAt(i, n))
	}
}
