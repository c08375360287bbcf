// Package logger wraps zap for the controller:
//   - a global sugared logger writing to stderr with a console encoder, so the
//     diagnostic status line on stdout stays readable,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing and runtime level changes,
//   - convenience functions (Infof, DebugKV, etc.).
//
// Components take a context and log through the logger found in it.
package logger
