package common

// AuthorizationHeaderName is the HTTP header carrying the bearer access token.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the access token in the Authorization header.
const BearerPrefix = "Bearer "

// MaxPhotoSize is the largest photo accepted by the client and the server.
const MaxPhotoSize = 10 << 20
