package domain

//region ValidationError

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

//endregion

//region ProductNotFoundError

type ProductNotFoundError struct {
	Msg string
}

func (e *ProductNotFoundError) Error() string {
	return e.Msg
}

func (e *ProductNotFoundError) Is(target error) bool {
	_, ok := target.(*ProductNotFoundError)
	return ok
}

//endregion

//region TransactionNotFoundError

type TransactionNotFoundError struct {
	Msg string
}

func (e *TransactionNotFoundError) Error() string {
	return e.Msg
}

func (e *TransactionNotFoundError) Is(target error) bool {
	_, ok := target.(*TransactionNotFoundError)
	return ok
}

//endregion

//region StoreNotFoundError

type StoreNotFoundError struct {
	Msg string
}

func (e *StoreNotFoundError) Error() string {
	return e.Msg
}

func (e *StoreNotFoundError) Is(target error) bool {
	_, ok := target.(*StoreNotFoundError)
	return ok
}

//endregion

//region ConflictError

// ConflictError means a concurrent stock update won the race and the retry
// budget was exhausted. The operation is safe to retry.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string {
	return e.Msg
}

func (e *ConflictError) Is(target error) bool {
	_, ok := target.(*ConflictError)
	return ok
}

//endregion

//region CompensationError

// CompensationError means stock was adjusted but could not be rolled back
// after a later failure. Adjustments lists the deltas that are now applied
// without a matching bill; they need manual reconciliation.
type CompensationError struct {
	Msg         string
	Adjustments []AppliedAdjustment
}

func (e *CompensationError) Error() string {
	return e.Msg
}

func (e *CompensationError) Is(target error) bool {
	_, ok := target.(*CompensationError)
	return ok
}

//endregion
