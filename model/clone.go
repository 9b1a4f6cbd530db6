package model

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// Clone deep copies src into a new value of the same type.
func Clone[T any](src *T) (*T, error) {
	dst := new(T)
	if err := copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("clone %T: %w", src, err)
	}
	return dst, nil
}
