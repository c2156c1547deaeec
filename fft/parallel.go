package fft

import (
	"fmt"
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/huyuguang/libfqfft/field"
	"github.com/huyuguang/libfqfft/internal/utils"
)

// TransformParallel computes the same result as [Transform], splitting the
// work across up to numGoRoutines goroutines.
//
// The parallelism degree is numGoRoutines rounded down to a power of two P.
// The length-n DFT matrix is decomposed into P row groups: each group first
// accumulates a twisted partial DFT of the input into a private buffer of
// length n/P, then transforms that buffer sequentially with root w^P, and
// finally the group results are transposed back into the caller's buffer.
// Later phases only start once every group has finished the previous one,
// since the transpose reads all group outputs.
//
// When the transform is too small to split (log2(n) < log2(P)) or fewer than
// two goroutines are requested, the sequential path is used.
func TransformParallel[E any, PE field.Element[E]](a []E, w E, numGoRoutines int) error {
	n := uint64(len(a))
	if !utils.IsPowerOfTwo(n) {
		return fmt.Errorf("%w: buffer has length %d", ErrNotPowerOfTwo, n)
	}
	if numGoRoutines < 2 {
		transform[E, PE](a, w)
		return nil
	}

	logn := utils.Log2Floor(n)
	logp := utils.Log2Floor(uint64(numGoRoutines))
	if logn < logp {
		transform[E, PE](a, w)
		return nil
	}

	numGroups := uint64(1) << logp
	groupSize := n >> logp

	tmp := make([][]E, numGroups)
	for j := range tmp {
		tmp[j] = make([]E, groupSize)
	}

	// Phase 1: group j accumulates
	//   tmp[j][i] = sum_s a[i + s*groupSize] * w^(j*(i + s*groupSize))
	// walking the exponent incrementally instead of re-powering per term.
	var phase1 errgroup.Group
	for j := uint64(0); j < numGroups; j++ {
		j := j
		phase1.Go(func() error {
			var omegaJ, omegaStep E
			PE(&omegaJ).Exp(w, new(big.Int).SetUint64(j))
			PE(&omegaStep).Exp(w, new(big.Int).SetUint64(j*groupSize))

			var elt E
			PE(&elt).SetOne()
			var term E
			for i := uint64(0); i < groupSize; i++ {
				for s := uint64(0); s < numGroups; s++ {
					// elt == w^(j*(i + s*groupSize))
					idx := i + s*groupSize
					PE(&term).Mul(&a[idx], &elt)
					PE(&tmp[j][i]).Add(&tmp[j][i], &term)
					PE(&elt).Mul(&elt, &omegaStep)
				}
				// After the s loop elt has advanced by w^(j*n) == 1, so one
				// extra factor of w^j moves it to the next row.
				PE(&elt).Mul(&elt, &omegaJ)
			}
			return nil
		})
	}
	if err := phase1.Wait(); err != nil {
		return err
	}

	// Phase 2: each group is now an independent DFT of size n/P with root w^P.
	var wp E
	PE(&wp).Exp(w, new(big.Int).SetUint64(numGroups))
	var phase2 errgroup.Group
	for j := uint64(0); j < numGroups; j++ {
		j := j
		phase2.Go(func() error {
			transform[E, PE](tmp[j], wp)
			return nil
		})
	}
	if err := phase2.Wait(); err != nil {
		return err
	}

	// Phase 3: transpose the group outputs back into the caller's buffer.
	// Writes for distinct i never alias.
	var phase3 errgroup.Group
	for i := uint64(0); i < numGroups; i++ {
		i := i
		phase3.Go(func() error {
			for j := uint64(0); j < groupSize; j++ {
				a[(j<<logp)+i] = tmp[i][j]
			}
			return nil
		})
	}
	return phase3.Wait()
}
