package game

import (
	"context"
	crand "crypto/rand"
	"math/big"
	"math/rand"
)

// CodeRegistry is the slice of the persistence collaborator the code
// generator needs to detect collisions against active sessions.
type CodeRegistry interface {
	Exists(ctx context.Context, code string) (bool, error)
}

// GenerateRoomCode creates a random room code. The generator itself makes
// no uniqueness guarantee; collision detection is the caller's concern.
func GenerateRoomCode() string {
	code := make([]byte, RoomCodeLength)
	for i := 0; i < RoomCodeLength; i++ {
		n, err := crand.Int(crand.Reader, big.NewInt(int64(len(RoomCodeChars))))
		if err != nil {
			// fallback to math/rand if crypto fails
			code[i] = RoomCodeChars[rand.Intn(len(RoomCodeChars))]
			continue
		}
		code[i] = RoomCodeChars[n.Int64()]
	}
	return string(code)
}

// UniqueRoomCode generates a room code not held by any active session
func UniqueRoomCode(ctx context.Context, registry CodeRegistry) (string, error) {
	for {
		code := GenerateRoomCode()
		taken, err := registry.Exists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
}
