package handler

// Request schemas. Validation runs before any backend call so an invalid
// form never costs a network round trip.

type loginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"user@example.com"`
	Password string `json:"password" validate:"required,min=6" example:"Secret#123"`
}

type registerRequest struct {
	Name         string `json:"name" validate:"required,max=60" example:"Jane Example"`
	Email        string `json:"email" validate:"required,email" example:"jane@example.com"`
	Address      string `json:"address" validate:"required,max=400" example:"12 Elm Street"`
	Password     string `json:"password" validate:"required,accountpassword" example:"Secret#123"`
	ConfPassword string `json:"conf_password" validate:"required,eqfield=Password" example:"Secret#123"`
	Role         string `json:"role" validate:"required,oneof=user store_owner admin" example:"user"`
}

type createStoreRequest struct {
	Name    string `json:"name" validate:"required,min=20,max=60" example:"Jane's Fine Produce Market"`
	Email   string `json:"email" validate:"required,email" example:"shop@example.com"`
	Address string `json:"address" validate:"required,max=400" example:"12 Elm Street"`
	OwnerID int    `json:"owner_id" validate:"required" example:"4"`
}

type ratingRequest struct {
	StoreID int `json:"store_id" validate:"required" example:"11"`
	Rating  int `json:"rating" validate:"required,gte=1,lte=5" example:"4"`
}

type updatePasswordRequest struct {
	NewPassword  string `json:"new_password" validate:"required,accountpassword" example:"NewSecret#123"`
	ConfPassword string `json:"conf_password" validate:"required,eqfield=NewPassword" example:"NewSecret#123"`
}

// statusResponse is the generic acknowledgement for mutations that return
// no view model.
type statusResponse struct {
	Message string `json:"message" example:"ok"`
}
