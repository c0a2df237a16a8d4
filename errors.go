package waveanim

import "errors"

var (
	// ErrAudioNotFound reports that the input path does not exist. It is
	// raised before any decode attempt.
	ErrAudioNotFound = errors.New("audio file not found")

	// ErrUnknownFormat reports that no decoder is registered for the input
	// file's extension.
	ErrUnknownFormat = errors.New("unsupported audio format")

	// ErrDecode wraps any failure while decoding the input container.
	ErrDecode = errors.New("failed to load audio file")

	// ErrEncoderNotFound reports that the clip's source container format
	// has no registered encoder (e.g. mp3, ogg).
	ErrEncoderNotFound = errors.New("no encoder for format")
)
