// Package pow implements the fixed difficulty proof of work puzzle that
// gates block creation.
package pow

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
)

// Difficulty is the number of leading zero hex characters a winning digest
// must carry. The value is fixed; there is no retargeting.
const Difficulty = 4

// maxProof bounds the search so proof*proof can never overflow an int64.
const maxProof = 3_037_000_499

// ErrProofRange is returned when a proof value sits outside the range
// where the puzzle arithmetic is safe in 64 bits.
var ErrProofRange = errors.New("proof outside safe 64 bit range")

// =============================================================================

// Verify performs the single hash evaluation that confirms a stored proof
// against the proof of the previous block. This is the cheap direction of
// the puzzle; Solve is the expensive one.
func Verify(proof int64, prevProof int64) bool {
	if proof < 0 || proof > maxProof || prevProof < 0 || prevProof > maxProof {
		return false
	}

	return isDigestSolved(digest(proof, prevProof))
}

// Solve searches for the smallest proof that satisfies the puzzle against
// the specified previous proof. The search order is fixed, so the same
// previous proof always yields the same answer. Expect on the order of
// 64k hash evaluations before a solution is found. The context is sampled
// during the search so a competing block can cancel the work.
func Solve(ctx context.Context, prevProof int64) (int64, error) {
	if prevProof < 0 || prevProof > maxProof {
		return 0, ErrProofRange
	}

	for proof := int64(1); ; proof++ {
		if proof > maxProof {
			return 0, ErrProofRange
		}

		if proof%1024 == 0 && ctx.Err() != nil {
			return 0, ctx.Err()
		}

		if isDigestSolved(digest(proof, prevProof)) {
			return proof, nil
		}
	}
}

// =============================================================================

// digest hashes the difference of the squares of the two proofs. The
// difference may be negative; the decimal string of the signed value is
// what gets hashed.
func digest(proof int64, prevProof int64) string {
	operation := proof*proof - prevProof*prevProof

	hash := sha256.Sum256([]byte(strconv.FormatInt(operation, 10)))
	return hex.EncodeToString(hash[:])
}

// isDigestSolved checks the digest complies with the puzzle rules. We
// need to match a difficulty number of 0's.
func isDigestSolved(digest string) bool {
	const match = "00000000"

	if len(digest) != 64 {
		return false
	}

	return digest[:Difficulty] == match[:Difficulty]
}
