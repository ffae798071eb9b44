package restyutil

import (
	"log/slog"
	"strconv"
	"sync/atomic"

	"github.com/go-resty/resty/v2"
)

type dumpCtx struct {
	output    InstrumentOutput
	idcounter *uint64
}

// DumpClient writes every http exchange made by `client` to `output`.
// it is a no-op when `output` is nil, so callers can wire it
// unconditionally and let verbose mode decide.
func DumpClient(client *resty.Client, output InstrumentOutput) {
	if output == nil {
		return
	}

	var idcounter uint64
	d := dumpCtx{output: output, idcounter: &idcounter}
	client.OnAfterResponse(d.onAfterResponse)
}

func (d dumpCtx) onAfterResponse(_ *resty.Client, res *resty.Response) error {
	messageId := strconv.FormatUint(atomic.AddUint64(d.idcounter, 1), 10)
	d.output.Write(messageId, formatHttpMessage(res))
	slog.Debug(
		"http exchange dumped",
		"method", res.Request.Method,
		"url", res.Request.URL,
		"message_id", messageId,
	)
	return nil
}
