package models

import "encoding/json"

// Skills are persisted as a JSON-encoded text column so the schema works
// unchanged on SQLite and Postgres. Every path that reads or writes
// User.Skills goes through these two functions.

// EncodeSkills serializes a skill list for storage. A nil or empty slice
// encodes to "[]".
func EncodeSkills(skills []string) string {
	if len(skills) == 0 {
		return "[]"
	}
	data, err := json.Marshal(skills)
	if err != nil {
		// []string cannot fail to marshal; keep the column well-formed anyway.
		return "[]"
	}
	return string(data)
}

// DecodeSkills is the inverse of EncodeSkills. Absent or unparseable input
// decodes to an empty list rather than an error.
func DecodeSkills(encoded string) []string {
	if encoded == "" {
		return []string{}
	}
	var skills []string
	if err := json.Unmarshal([]byte(encoded), &skills); err != nil {
		return []string{}
	}
	if skills == nil {
		return []string{}
	}
	return skills
}
