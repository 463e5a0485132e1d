package intern

import (
	"strconv"
)

// Token identifies one interned value of the pool that issued it. Tokens are
// dense: the n-th distinct value gets Token(n-1), so a token can index a
// slice held by the caller.
type Token uint32

func (t Token) Index() int { return int(t) }

func (t Token) String() string { return strconv.FormatUint(uint64(t), 10) }
