package testutils

import (
	"encoding/json"

	fuzz "github.com/google/gofuzz"
)

// FuzzUnmarshaler tests given unmarshaler with random bytes.
func FuzzUnmarshaler(unmarshaler json.Unmarshaler) {
	for i := 0; i < 100; i++ {
		var messageBytes []byte

		f := fuzz.New().NilChance(0.01).NumElements(0, 512)
		f.Fuzz(&messageBytes)

		_ = unmarshaler.UnmarshalJSON(messageBytes)
	}
}

// FuzzJSONUnmarshaler tests given unmarshaler with random strings wrapped in
// JSON object syntax, so the decoder gets past the first token.
func FuzzJSONUnmarshaler(unmarshaler json.Unmarshaler, fields ...string) {
	for i := 0; i < 100; i++ {
		record := make(map[string]string)

		f := fuzz.New().NilChance(0).NumElements(1, 8)
		for _, field := range fields {
			var value string
			f.Fuzz(&value)
			record[field] = value
		}

		messageBytes, err := json.Marshal(record)
		if err != nil {
			continue
		}

		_ = unmarshaler.UnmarshalJSON(messageBytes)
	}
}
