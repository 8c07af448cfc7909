// Package docs registers the API contract with swag so echo-swagger can serve it.
package docs

import (
	"dispatch/api"

	"github.com/swaggo/swag"
)

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Dispatch API",
	Description:      "Order intake, delivery partner management and batch assignment of pending orders to partners.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  string(api.OpenAPI),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
