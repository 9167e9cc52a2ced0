package main

import (
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// inputSchemaJSON lists only the fields the converter reads. Anything else
// the producer writes is allowed through untouched.
const inputSchemaJSON = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["files"],
	"properties": {
		"files": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["file", "lines"],
				"properties": {
					"file": {"type": "string"},
					"lines": {
						"type": "array",
						"items": {
							"type": "object",
							"required": ["line_number", "count"],
							"properties": {
								"line_number": {"type": "integer"},
								"count": {"type": "integer"}
							}
						}
					}
				}
			}
		}
	}
}`

var inputSchema = jsonschema.MustCompileString("gcov-json-input.json", inputSchemaJSON)
