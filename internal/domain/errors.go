package domain

// Domain error categories. Adapters map these onto transport status codes,
// so use cases return the constructors below rather than raw errors.

type domainErr struct {
	message string
}

func (e domainErr) Error() string {
	return e.message
}

// ValidationErr indicates the caller supplied input the domain rejects.
type ValidationErr struct {
	domainErr
}

// NewValidationErr builds a ValidationErr carrying the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{domainErr{message: message}}
}

// NotFoundErr indicates the requested entity does not exist for the owner.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr builds a NotFoundErr carrying the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{domainErr{message: message}}
}
