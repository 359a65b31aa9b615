package chi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface is the set of handlers the API router dispatches to.
type ServerInterface interface {
	// (GET /)
	Root(w http.ResponseWriter, r *http.Request)
	// (GET /questions)
	ListQuestions(w http.ResponseWriter, r *http.Request, params ListQuestionsParams)
	// (POST /questions)
	CreateQuestion(w http.ResponseWriter, r *http.Request)
	// (POST /questions/check-similarity)
	CheckSimilarity(w http.ResponseWriter, r *http.Request)
	// (POST /questions/check-words)
	CheckWords(w http.ResponseWriter, r *http.Request)
	// (GET /questions/{id})
	GetQuestion(w http.ResponseWriter, r *http.Request, id string)
	// (DELETE /questions/{id})
	DeleteQuestion(w http.ResponseWriter, r *http.Request, id string)
	// (GET /health)
	HealthCheck(w http.ResponseWriter, r *http.Request)
	// (GET /metrics)
	Metrics(w http.ResponseWriter, r *http.Request)
}

// ChiServerOptions configures HandlerWithOptions.
type ChiServerOptions struct {
	BaseRouter       chi.Router
	Middlewares      []func(http.Handler) http.Handler
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// InvalidParamFormatError reports a path or query parameter that failed to bind.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error { return e.Err }

// serverInterfaceWrapper binds parameters and forwards to the ServerInterface.
type serverInterfaceWrapper struct {
	handler          ServerInterface
	middlewares      []func(http.Handler) http.Handler
	errorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

func (siw *serverInterfaceWrapper) wrap(h http.HandlerFunc) http.Handler {
	var handler http.Handler = h
	for _, mw := range siw.middlewares {
		handler = mw(handler)
	}
	return handler
}

func (siw *serverInterfaceWrapper) ListQuestions(w http.ResponseWriter, r *http.Request) {
	var params ListQuestionsParams

	if err := runtime.BindQueryParameter("form", true, false, "offset", r.URL.Query(), &params.Offset); err != nil {
		siw.errorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "offset", Err: err})
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit); err != nil {
		siw.errorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "limit", Err: err})
		return
	}

	siw.wrap(func(w http.ResponseWriter, r *http.Request) {
		siw.handler.ListQuestions(w, r, params)
	}).ServeHTTP(w, r)
}

func (siw *serverInterfaceWrapper) questionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.errorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return "", false
	}
	return id, true
}

func (siw *serverInterfaceWrapper) GetQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.questionID(w, r)
	if !ok {
		return
	}
	siw.wrap(func(w http.ResponseWriter, r *http.Request) {
		siw.handler.GetQuestion(w, r, id)
	}).ServeHTTP(w, r)
}

func (siw *serverInterfaceWrapper) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := siw.questionID(w, r)
	if !ok {
		return
	}
	siw.wrap(func(w http.ResponseWriter, r *http.Request) {
		siw.handler.DeleteQuestion(w, r, id)
	}).ServeHTTP(w, r)
}

// HandlerWithOptions mounts every API route on options.BaseRouter (a new router if nil).
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter
	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, _ *http.Request, err error) {
			writeError(w, http.StatusBadRequest, ErrorResponseCodeBadRequest, err.Error())
		}
	}
	siw := &serverInterfaceWrapper{
		handler:          si,
		middlewares:      options.Middlewares,
		errorHandlerFunc: options.ErrorHandlerFunc,
	}

	r.Get("/", siw.wrap(si.Root).ServeHTTP)
	r.Get("/health", siw.wrap(si.HealthCheck).ServeHTTP)
	r.Get("/metrics", siw.wrap(si.Metrics).ServeHTTP)

	r.Route("/questions", func(r chi.Router) {
		r.Get("/", siw.ListQuestions)
		r.Post("/", siw.wrap(si.CreateQuestion).ServeHTTP)
		r.Post("/check-similarity", siw.wrap(si.CheckSimilarity).ServeHTTP)
		r.Post("/check-words", siw.wrap(si.CheckWords).ServeHTTP)
		r.Get("/{id}", siw.GetQuestion)
		r.Delete("/{id}", siw.DeleteQuestion)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, ErrorResponseCodeRouteNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrorResponseCodeMethodNotAllowed, "method not allowed")
	})

	return r
}
