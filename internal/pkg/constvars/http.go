package constvars

const (
	MIMETextPlain           = "text/plain"
	MIMEApplicationXML      = "application/xml"
	MIMEApplicationJSON     = "application/json"
	MIMEOctetStream         = "application/octet-stream"
	MIMEApplicationXMLUTF8  = "application/xml; charset=utf-8"
	MIMEApplicationJSONUTF8 = "application/json; charset=utf-8"
)

const (
	StatusOK        = 200
	StatusCreated   = 201
	StatusNoContent = 204

	StatusBadRequest   = 400
	StatusUnauthorized = 401
	StatusForbidden    = 403
	StatusNotFound     = 404
	StatusConflict     = 409
	StatusGone         = 410

	StatusInternalServerError = 500
	StatusGatewayTimeout      = 504
)

const (
	HeaderContentType        = "Content-Type"
	HeaderContentDisposition = "Content-Disposition"
	HeaderAuthorization      = "Authorization"
	HeaderXRequestID         = "X-Request-ID"
)
