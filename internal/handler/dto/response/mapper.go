package response

import (
	"github.com/jinzhu/copier"
)

// mapOne copies same-named fields from src into a new T.
func mapOne[T any](src any) (*T, error) {
	dst := new(T)
	if err := copier.Copy(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

func mapMany[T any](src any) ([]*T, error) {
	dst := make([]*T, 0)
	if err := copier.Copy(&dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}
