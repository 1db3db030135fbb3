package errors

const (
	UnauthorizedError         = "Unauthorized access"
	ForbiddenError            = "Forbidden Access"
	ExpiredTokenError         = "Token has expired"
	InvalidTokenError         = "Token is invalid"
	InvalidRequestFormatError = "Invalid request format"
	InvalidEmailError         = "Invalid email format"
	RequiredIdError           = "Listing id is required"
	InvalidIdError            = "Invalid listing id"
	RequiredLocationError     = "No location supplied"
	NotFoundError             = "Not found"
	InvalidPriceError         = "Price should be a number greater than zero"
	DatabaseError             = "Database exception"
	PaymentGatewayError       = "Payment gateway exception"
)
