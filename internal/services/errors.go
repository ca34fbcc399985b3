package services

import "errors"

// Error variables
var (
	ErrGenreNotFound    = errors.New("the genre with the given ID was not found")
	ErrMovieNotFound    = errors.New("the movie with the given ID was not found")
	ErrCustomerNotFound = errors.New("the customer with the given ID was not found")
	ErrRentalNotFound   = errors.New("rental not found")

	ErrInvalidGenre    = errors.New("invalid genre")
	ErrInvalidCustomer = errors.New("invalid customer")
	ErrInvalidMovie    = errors.New("invalid movie")

	ErrMovieOutOfStock       = errors.New("movie not in stock")
	ErrRentalAlreadyReturned = errors.New("return already processed")

	ErrUserAlreadyExists  = errors.New("user already registered")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordTooLong    = errors.New("password longer than 72 bytes")
)
