package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalError represents a generic internal error.
	GeneralInternalError ErrorCode = "general_internal_error"
	// GeneralValidationError represents a generic validation error.
	GeneralValidationError ErrorCode = "general_validation_error"

	// RedisConfigError represents an error when the Redis configuration is invalid or nil.
	RedisConfigError ErrorCode = "redis_config_error"
	// RedisConnectionError represents an error when connecting to Redis.
	RedisConnectionError ErrorCode = "redis_connection_error"
	// RedisDisconnectionError represents an error when disconnecting from Redis.
	RedisDisconnectionError ErrorCode = "redis_disconnection_error"
	// RedisPingError represents an error when pinging Redis.
	RedisPingError ErrorCode = "redis_pinging_error"
	// RedisXAddError represents an error when adding entries to a stream in Redis.
	RedisXAddError ErrorCode = "redis_xadd_error"
	// RedisXLenError represents an error when getting the length of a stream in Redis.
	RedisXLenError ErrorCode = "redis_xlen_error"
	// RedisXReadError represents an error when reading from a stream in Redis.
	RedisXReadError ErrorCode = "redis_xread_error"

	// PayloadDecodeError represents an error when a stream entry payload cannot be decoded.
	PayloadDecodeError ErrorCode = "payload_decode_error"
	// PayloadEncodeError represents an error when an event cannot be encoded for the stream.
	PayloadEncodeError ErrorCode = "payload_encode_error"

	// ErrInvalidQuantity represents an error when a trade intent carries a non-positive quantity.
	ErrInvalidQuantity ErrorCode = "invalid_quantity"
	// ErrInvalidPrice represents an error when a trade intent carries a non-positive price.
	ErrInvalidPrice ErrorCode = "invalid_price"
	// ErrUnknownSide represents an error when a trade intent carries an unknown side.
	ErrUnknownSide ErrorCode = "unknown_side"
)
