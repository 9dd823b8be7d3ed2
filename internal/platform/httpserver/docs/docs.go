// Package docs serves the OpenAPI document for the swagger UI route.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/users": {
            "post": {
                "summary": "Register or re-register an identity",
                "tags": ["identity"],
                "responses": {"200": {"description": "OK"}, "201": {"description": "Created"}}
            },
            "get": {
                "summary": "List identities",
                "tags": ["identity"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/users/{email}/role": {
            "get": {
                "summary": "Resolve the stored role for an email",
                "tags": ["identity"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/librarians": {
            "post": {
                "summary": "Apply to become a librarian",
                "tags": ["identity"],
                "responses": {"201": {"description": "Created"}, "409": {"description": "Already applied"}}
            },
            "get": {
                "summary": "List librarian applications",
                "tags": ["identity"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/books": {
            "get": {
                "summary": "List published listings",
                "tags": ["catalog"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/add-book": {
            "post": {
                "summary": "Create a listing",
                "tags": ["catalog"],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/orders/{listingId}": {
            "post": {
                "summary": "Place an order against a published listing",
                "tags": ["order"],
                "responses": {"200": {"description": "Listing not available"}, "201": {"description": "Created"}}
            }
        },
        "/orders/{id}/status": {
            "patch": {
                "summary": "Drive one delivery-status transition",
                "tags": ["order"],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Invalid transition"}}
            }
        },
        "/create-checkout-session": {
            "post": {
                "summary": "Open a gateway-hosted checkout session",
                "tags": ["payment"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/payment-success": {
            "patch": {
                "summary": "Confirm a settled checkout session",
                "tags": ["payment"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/payment-history": {
            "get": {
                "summary": "List the caller's payments",
                "tags": ["payment"],
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "BookCourier API",
	Description:      "Book lending marketplace: identities, listings, orders, payments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
