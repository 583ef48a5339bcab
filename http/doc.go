// Package http provides the HTTP surface of quickserve: the route handlers,
// the dispatcher, the centralized error translator and the server lifecycle.
//
// # Routes
//
//	GET  /api/health       200 {"status":"ok"}
//	POST /api/example      201 {"id":1,"name":"Test"}  (400 "Name is required")
//	GET  /api/example/:id  200 {"id":1,"name":"Item 1"} (400 "Invalid id")
//
// Anything else answers 404 {"status":404,"message":"Not Found"}.
//
// # Handlers
//
// Handlers return a Result or an error and never write failure responses:
//
//	func HandleGetItem(r *Request) (Result, error) {
//	    id, err := quickserve.ParseID(r.Params.Get("id"))
//	    if err != nil {
//	        return Result{}, err
//	    }
//	    return OK(quickserve.NewItem(id)), nil
//	}
//
// # Errors
//
// Every failure reaches the Translator exactly once and produces one JSON body
// {status, message}. The trace field is added only when the translator was
// built with development mode on:
//
//	translator := http.NewTranslator(cfg.DevMode())
//
// # Usage
//
//	handler := http.NewHandler(&http.HandlerConfig{
//	    DevMode:      cfg.DevMode(),
//	    MaxBodyBytes: cfg.Server.MaxBodyBytes,
//	    CORS:         cfg.CORS,
//	})
//
//	srv := http.NewServer(handler.Router(), http.ServerOptions{})
//	if err := srv.Start(ctx, 3000); err != nil {
//	    return err
//	}
//	defer srv.Stop(context.Background())
//
// # Middleware
//
// Router applies, in order: RealIP, RequestIDMiddleware, AccessLogMiddleware,
// RecoverMiddleware, CORS (when enabled) and the request size limit.
package http
