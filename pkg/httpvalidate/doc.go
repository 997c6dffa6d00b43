// Package httpvalidate adapts a validator.Validator to net/http.
//
// Handle decodes a JSON or YAML request body into the request type, runs the
// validator with the request context and either calls the wrapped function or
// answers 422 with the ordered validation report:
//
//	{
//	  "error": {
//	    "code": "validation_error",
//	    "message": "The request contains invalid fields.",
//	    "details": {
//	      "Name": ["The Name field cannot be empty."],
//	      "Email": ["The Email field must be a valid email address."]
//	    }
//	  }
//	}
//
// Handle returns a plain http.HandlerFunc, so it mounts on any router.
package httpvalidate
