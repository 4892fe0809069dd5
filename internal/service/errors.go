package service

import "errors"

var (
	// ErrSameLocation is returned when start and end resolve to the same location.
	ErrSameLocation = errors.New("start and end locations cannot be the same")

	// ErrCrossCity is returned when start and end belong to different cities.
	ErrCrossCity = errors.New("cross-city travel is not supported")

	// ErrMissingRequiredField is returned when a prediction draft lacks a location or travel time.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrPredictionInFlight is returned when a prediction request is already outstanding.
	ErrPredictionInFlight = errors.New("prediction request already in flight")

	// ErrPredictionUnavailable covers predictor transport failures and malformed responses.
	ErrPredictionUnavailable = errors.New("prediction unavailable")

	// ErrDeleteInProgress is returned when a delete is in flight and another one is requested.
	ErrDeleteInProgress = errors.New("another delete is in progress")

	// ErrNoPendingDelete is returned when a delete is confirmed without a matching pending request.
	ErrNoPendingDelete = errors.New("no pending delete for this trip")

	// ErrTripDeleteFailed is returned when the store rejects a confirmed delete.
	ErrTripDeleteFailed = errors.New("failed to delete trip")

	// ErrProfileSaveInFlight is returned when a profile save is already outstanding.
	ErrProfileSaveInFlight = errors.New("profile save already in flight")

	// ErrInvalidOwnerID is returned when the owner id is empty.
	ErrInvalidOwnerID = errors.New("invalid owner id")

	// ErrInvalidTripID is returned when the trip id is empty.
	ErrInvalidTripID = errors.New("invalid trip id")

	// ErrInvalidCity is returned when a city value is not one of the supported cities.
	ErrInvalidCity = errors.New("invalid city")

	// ErrEmptyProfileUpdate is returned when a profile update carries no fields.
	ErrEmptyProfileUpdate = errors.New("no update fields provided")
)
