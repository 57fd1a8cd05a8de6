// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// DrawingIDGenerator produces client-side drawing identifiers.
type DrawingIDGenerator struct {
}

func NewDrawingIDGenerator() *DrawingIDGenerator {
	return &DrawingIDGenerator{}
}

// Generate returns a fresh random drawing id. Version 4 UUIDs are used
// because the server's canonical-id check only admits versions 1 through 5.
func (g *DrawingIDGenerator) Generate() string {
	return uuid.NewString()
}
