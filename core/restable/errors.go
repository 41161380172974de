package restable

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrTypeMismatch matches every *TypeMismatchError
	ErrTypeMismatch = errors.New("restable: type mismatch")

	// ErrUnknownSearchable is recorded on the query when a searchable is not a field of the model
	ErrUnknownSearchable = errors.New("restable: unknown searchable field")
)

var contractName = reflect.TypeOf((*Restable)(nil)).Elem().String()

// TypeMismatchError is returned when a model does not implement Restable
type TypeMismatchError struct {
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("restable: %s should be an instance of %s", e.Actual, e.Expected)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// capability checks model against the Restable contract
func capability(model any) (Restable, error) {
	if model != nil {
		if r, ok := model.(Restable); ok {
			return r, nil
		}
	}
	return nil, &TypeMismatchError{Expected: contractName, Actual: fmt.Sprintf("%T", model)}
}
