package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/BruksfildServices01/barber-slot-loader/internal/audit"
	"github.com/BruksfildServices01/barber-slot-loader/internal/config"
	"github.com/BruksfildServices01/barber-slot-loader/internal/form"
	"github.com/BruksfildServices01/barber-slot-loader/internal/loader"
	"github.com/BruksfildServices01/barber-slot-loader/internal/notice"
	"github.com/BruksfildServices01/barber-slot-loader/internal/slotsclient"
)

type options struct {
	barberID string
	date     string
	watch    bool
	trail    bool
}

func main() {
	var o options
	flag.StringVar(&o.barberID, "barber", "", "barber identifier")
	flag.StringVar(&o.date, "date", "", "date (YYYY-MM-DD)")
	flag.BoolVar(&o.watch, "watch", false, "read barber=<v> / date=<v> changes from stdin")
	flag.BoolVar(&o.trail, "trail", false, "write the JSON diagnostics trail to stderr")
	flag.Parse()

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, cfg, o, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, cfg *config.Config, o options, in io.Reader, out, errOut io.Writer) int {
	bf := form.NewBooking()
	timeSel, err := bf.Select(form.KeyTime)
	if err != nil {
		fmt.Fprintf(errOut, "booking form: %v\n", err)
		return 1
	}

	opts := []loader.Option{loader.WithLogger(log.New(errOut, "", log.LstdFlags))}
	if o.trail {
		dispatcher := audit.NewDispatcher(audit.New(errOut))
		defer dispatcher.Close()
		opts = append(opts, loader.WithAudit(dispatcher))
	}

	ld, err := loader.FromForm(bf, slotsclient.New(cfg), notice.NewWriter(out), opts...)
	if err != nil {
		fmt.Fprintf(errOut, "slot loader: %v\n", err)
		return 1
	}
	ld.Bind(ctx)
	defer ld.Wait()

	for _, kv := range [][2]string{{form.KeyBarber, o.barberID}, {form.KeyDate, o.date}} {
		if err := apply(bf, kv[0], kv[1]); err != nil {
			fmt.Fprintln(errOut, err)
			return 2
		}
	}
	ld.Wait()
	printOptions(out, timeSel)

	if !o.watch {
		return 0
	}
	return watch(ctx, bf, ld, timeSel, in, out, errOut)
}

// watch applies key=value lines from in until EOF or ctx is cancelled.
func watch(
	ctx context.Context,
	bf *form.Form,
	ld *loader.Loader,
	timeSel *form.Select,
	in io.Reader,
	out io.Writer,
	errOut io.Writer,
) int {

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				scanErr <- ctx.Err()
				return
			}
		}
		scanErr <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return 130

		case line, ok := <-lines:
			if !ok {
				err := <-scanErr
				if ctx.Err() != nil {
					return 130
				}
				if err != nil {
					fmt.Fprintf(errOut, "stdin: %v\n", err)
					return 1
				}
				return 0
			}

			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			key, value, found := strings.Cut(line, "=")
			if !found {
				fmt.Fprintf(errOut, "expected key=value, got %q\n", line)
				continue
			}
			if err := apply(bf, strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
				fmt.Fprintln(errOut, err)
				continue
			}
			ld.Wait()
			printOptions(out, timeSel)
		}
	}
}

func apply(bf *form.Form, key, value string) error {
	if key != form.KeyBarber && key != form.KeyDate {
		return fmt.Errorf("unknown control %q (want barber or date)", key)
	}
	f, err := bf.Field(key)
	if err != nil {
		return err
	}
	f.SetValue(value)
	return nil
}

func printOptions(w io.Writer, sel *form.Select) {
	fmt.Fprintf(w, "time: [%s]\n", strings.Join(sel.Labels(), " | "))
}
