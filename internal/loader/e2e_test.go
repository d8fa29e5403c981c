package loader

import (
	"bytes"
	"context"
	"log"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-slot-loader/internal/config"
	"github.com/BruksfildServices01/barber-slot-loader/internal/form"
	infraRepo "github.com/BruksfildServices01/barber-slot-loader/internal/infra/repository"
	"github.com/BruksfildServices01/barber-slot-loader/internal/notice"
	"github.com/BruksfildServices01/barber-slot-loader/internal/routes"
	"github.com/BruksfildServices01/barber-slot-loader/internal/slotsclient"
)

// Runs the loader against the dev slots server for both response shapes.
func TestLoaderAgainstSlotsServer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, shape := range []string{config.ShapeWrapped, config.ShapeBare} {
		t.Run(shape, func(t *testing.T) {
			repo, err := infraRepo.ParseBooked("3@2999-05-10@09:30,3@2999-05-11@09:00,3@2999-05-11@09:30,3@2999-05-11@10:00")
			if err != nil {
				t.Fatalf("ParseBooked: %v", err)
			}
			cfg := &config.Config{
				ResponseShape: shape,
				DayGrid:       []string{"09:00", "09:30", "10:00"},
				Timezone:      "UTC",
			}
			r := gin.New()
			routes.RegisterRoutes(r, repo, cfg)
			srv := httptest.NewServer(r)
			defer srv.Close()

			bf := form.NewBooking()
			notes := &recorder{}
			logs := &bytes.Buffer{}
			ld, err := FromForm(bf, slotsclient.NewWithHTTPClient(srv.URL, srv.Client()), notes,
				WithLogger(log.New(logs, "", 0)))
			if err != nil {
				t.Fatalf("FromForm: %v", err)
			}
			ld.Bind(context.Background())

			barber, _ := bf.Field(form.KeyBarber)
			date, _ := bf.Field(form.KeyDate)
			timeSel, _ := bf.Select(form.KeyTime)

			barber.SetValue("3")
			date.SetValue("2999-05-10")
			ld.Wait()
			if got := timeSel.Options(); !reflect.DeepEqual(got, []string{"", "09:00", "10:00"}) {
				t.Fatalf("options = %q", got)
			}

			date.SetValue("2999-05-11")
			ld.Wait()
			if got := timeSel.Options(); !reflect.DeepEqual(got, []string{""}) {
				t.Fatalf("options = %q", got)
			}

			date.SetValue("11/05/2999")
			ld.Wait()
			if got := timeSel.Options(); !reflect.DeepEqual(got, []string{""}) {
				t.Fatalf("options = %q", got)
			}

			want := []notice.Kind{notice.KindNoSlots, notice.KindLoadFailed}
			if got := notes.kinds(); !reflect.DeepEqual(got, want) {
				t.Fatalf("notices = %v, want %v", got, want)
			}
			if logs.Len() == 0 {
				t.Fatal("expected the failed load to be logged")
			}
		})
	}
}
