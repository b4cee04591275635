package api

import (
	"encoding/hex"
	"strconv"

	"github.com/zeebo/blake3"
)

// Hash returns a deterministic BLAKE3 hash identifying this card across
// rescans. It covers Path, Line, and the raw block body; scan time and the
// denormalized display fields do not participate.
func (c Card) Hash() string {
	h := blake3.New()

	h.Write([]byte(c.Path))
	h.Write([]byte{0})

	h.Write([]byte(strconv.Itoa(c.Line)))
	h.Write([]byte{0})

	h.Write([]byte(c.Raw))

	sum := h.Sum(nil)
	return hex.EncodeToString(sum)
}
