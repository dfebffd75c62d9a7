package usecase

import (
	"fmt"
	"io"

	"github.com/aalvaropc/solid/internal/domain"
)

// UseIt is client code written against the rectangle contract: it remembers
// the width, sets the height to 10 and expects area = width * 10.
func UseIt(w io.Writer, r domain.Resizable) (expected, got int) {
	width := r.Width()
	r.SetHeight(10)

	expected, got = width*10, r.Area()
	fmt.Fprintf(w, "Expected area = %d, got %d\n", expected, got)
	return expected, got
}
