// Binary intarray runs intarray operations from command line.
//
// Elements are passed as arguments or read from packed Int32 file:
//
//	intarray head 3 2 1
//	intarray tail --times 2 --format json 7 8 9
//	intarray pack --out data.bin 4 5 6
//	intarray head --in data.bin --length 2
package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/go-faster/intarray/internal/cmd/app"
)

func main() {
	app.Run(func(ctx context.Context, lg *zap.Logger) error {
		return newRoot(lg).ExecuteContext(ctx)
	})
}
