package grow

import (
	"fmt"

	"github.com/dacapoday/cursor"
)

var ErrAdvance = cursor.ErrAdvance

func errAdvance(n, remaining int) error {
	return fmt.Errorf("%w: advance %d, remaining %d", ErrAdvance, n, remaining)
}
