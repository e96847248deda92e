package api

type RequestLog struct {
	Method    string
	URL       string
	RequestID string
	Headers   map[string][]string
	Status    int
}

type RequestLogger func(RequestLog)
