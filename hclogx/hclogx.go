// Package hclogx bridges logx dispatches into hashicorp/go-hclog, for
// programs that already standardize on hclog sinks but want logx level
// routing in front of them.
package hclogx

import (
	"github.com/hashicorp/go-hclog"

	"github.com/Abraxas-365/termlogx/logx"
)

type handler struct {
	log hclog.Logger
}

// Handler wraps an hclog logger so it can be chained into a dispatch:
//
//	d := logx.NewDispatch().
//		Level(logx.FilterInfo).
//		ChainHandler(hclogx.Handler(hclog.Default()))
//
// Records keep their module name as the "module" key/value pair.
func Handler(l hclog.Logger) logx.Handler {
	return &handler{log: l}
}

func (h *handler) Handle(r *logx.Record) {
	var args []interface{}
	if r.Module != "" {
		args = append(args, "module", r.Module)
	}

	switch r.Level {
	case logx.ErrorLevel:
		h.log.Error(r.Message, args...)
	case logx.WarnLevel:
		h.log.Warn(r.Message, args...)
	case logx.InfoLevel:
		h.log.Info(r.Message, args...)
	case logx.DebugLevel:
		h.log.Debug(r.Message, args...)
	case logx.TraceLevel:
		h.log.Trace(r.Message, args...)
	}
}
