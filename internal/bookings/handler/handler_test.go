package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apperrors "dogbooking/pkg/errors"
	"dogbooking/pkg/logger"
	"dogbooking/pkg/model"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type mockBookingService struct {
	CreateOwnerFunc   func(ctx context.Context, req *model.OwnerRequest) (*model.Owner, error)
	CreateDogFunc     func(ctx context.Context, req *model.DogRequest) (*model.Dog, error)
	CreateBookingFunc func(ctx context.Context, req *model.BookingRequest) (*model.Booking, error)
	CancelBookingFunc func(ctx context.Context, id string) error
	GetUpcomingFunc   func(ctx context.Context, now time.Time) ([]*model.FullBooking, error)
}

func (m *mockBookingService) CreateOwner(ctx context.Context, req *model.OwnerRequest) (*model.Owner, error) {
	return m.CreateOwnerFunc(ctx, req)
}

func (m *mockBookingService) CreateDog(ctx context.Context, req *model.DogRequest) (*model.Dog, error) {
	return m.CreateDogFunc(ctx, req)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
	return m.CreateBookingFunc(ctx, req)
}

func (m *mockBookingService) CancelBooking(ctx context.Context, id string) error {
	return m.CancelBookingFunc(ctx, id)
}

func (m *mockBookingService) GetUpcoming(ctx context.Context, now time.Time) ([]*model.FullBooking, error) {
	return m.GetUpcomingFunc(ctx, now)
}

func testLogger() *logger.Logger {
	return logger.Discard()
}

func newRouter(svc *mockBookingService) *httprouter.Router {
	router := httprouter.New()
	NewBookingHandler(svc, testLogger()).RegisterRoutes(router)
	return router
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateBooking(t *testing.T) {
	ownerID := primitive.NewObjectID()

	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{"created", `{"owner":"` + ownerID.Hex() + `","start_time":"2030-01-01T10:00:00Z","duration_in_minutes":30}`, nil, http.StatusCreated},
		{"malformed json", `{"owner":`, nil, http.StatusBadRequest},
		{"invalid input", `{"owner":"x"}`, apperrors.InvalidInput("Invalid identifier", nil), http.StatusBadRequest},
		{"validation", `{"owner":"x"}`, apperrors.Validation("Validation failed", nil), http.StatusUnprocessableEntity},
		{"unexpected", `{"owner":"x"}`, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockBookingService{
				CreateBookingFunc: func(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
					if tt.serviceErr != nil {
						return nil, tt.serviceErr
					}
					return &model.Booking{
						ID:                primitive.NewObjectID(),
						OwnerID:           ownerID,
						StartTime:         time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC),
						DurationInMinutes: req.DurationInMinutes,
					}, nil
				},
			}

			rec := serve(newRouter(svc), http.MethodPost, "/api/v1/bookings", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body %s", rec.Code, tt.wantStatus, rec.Body.String())
			}

			if tt.wantStatus == http.StatusCreated {
				var resp struct {
					Data model.Booking `json:"data"`
				}
				if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if resp.Data.OwnerID != ownerID || resp.Data.DurationInMinutes != 30 {
					t.Errorf("unexpected booking %+v", resp.Data)
				}
			}
		})
	}
}

func TestCreateOwnerAndDog(t *testing.T) {
	ownerID := primitive.NewObjectID()
	svc := &mockBookingService{
		CreateOwnerFunc: func(ctx context.Context, req *model.OwnerRequest) (*model.Owner, error) {
			return &model.Owner{ID: ownerID, Name: req.Name, Phone: req.Phone, Address: req.Address}, nil
		},
		CreateDogFunc: func(ctx context.Context, req *model.DogRequest) (*model.Dog, error) {
			return &model.Dog{ID: primitive.NewObjectID(), OwnerID: ownerID, Name: req.Name}, nil
		},
	}
	router := newRouter(svc)

	rec := serve(router, http.MethodPost, "/api/v1/owners", `{"name":"Ada","phone":"+16502530000","address":"1 Way"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("owner status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), ownerID.Hex()) {
		t.Errorf("expected owner id in body, got %s", rec.Body.String())
	}

	rec = serve(router, http.MethodPost, "/api/v1/dogs", `{"owner":"`+ownerID.Hex()+`","name":"Rex"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("dog status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"name":"Rex"`) {
		t.Errorf("expected dog name in body, got %s", rec.Body.String())
	}
}

func TestCancelBooking(t *testing.T) {
	id := primitive.NewObjectID().Hex()

	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"cancelled", nil, http.StatusNoContent},
		{"not found", apperrors.NotFoundWithID("Booking", id), http.StatusNotFound},
		{"invalid id", apperrors.InvalidInput("Invalid identifier", nil), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID string
			svc := &mockBookingService{
				CancelBookingFunc: func(ctx context.Context, bookingID string) error {
					gotID = bookingID
					return tt.serviceErr
				},
			}

			rec := serve(newRouter(svc), http.MethodPost, "/api/v1/bookings/id/"+id+"/cancel", "")
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if gotID != id {
				t.Errorf("id = %q, want %q", gotID, id)
			}
		})
	}
}

func TestGetUpcoming(t *testing.T) {
	t.Run("defaults to zero reference time", func(t *testing.T) {
		var gotNow time.Time
		svc := &mockBookingService{
			GetUpcomingFunc: func(ctx context.Context, now time.Time) ([]*model.FullBooking, error) {
				gotNow = now
				return []*model.FullBooking{}, nil
			},
		}

		rec := serve(newRouter(svc), http.MethodGet, "/api/v1/bookings", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if !gotNow.IsZero() {
			t.Errorf("now = %v, want zero", gotNow)
		}
		if strings.TrimSpace(rec.Body.String()) != `{"data":[]}` {
			t.Errorf("body = %s", rec.Body.String())
		}
	})

	t.Run("from parameter", func(t *testing.T) {
		var gotNow time.Time
		svc := &mockBookingService{
			GetUpcomingFunc: func(ctx context.Context, now time.Time) ([]*model.FullBooking, error) {
				gotNow = now
				return []*model.FullBooking{{ID: primitive.NewObjectID(), Dogs: []model.Dog{}}}, nil
			},
		}

		rec := serve(newRouter(svc), http.MethodGet, "/api/v1/bookings?from=2030-01-01T12:00:00%2B02:00", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
		}
		want := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
		if !gotNow.Equal(want) {
			t.Errorf("now = %v, want %v", gotNow, want)
		}
		if !strings.Contains(rec.Body.String(), `"dogs":[]`) {
			t.Errorf("expected empty dogs array, got %s", rec.Body.String())
		}
	})

	t.Run("bad from parameter", func(t *testing.T) {
		svc := &mockBookingService{
			GetUpcomingFunc: func(ctx context.Context, now time.Time) ([]*model.FullBooking, error) {
				t.Error("service must not be called")
				return nil, nil
			},
		}

		rec := serve(newRouter(svc), http.MethodGet, "/api/v1/bookings?from=yesterday", "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

type mockPinger struct {
	err error
}

func (m mockPinger) Ping(ctx context.Context, rp *readpref.ReadPref) error {
	return m.err
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		pingErr    error
		wantStatus int
	}{
		{"health", "/health", errors.New("down"), http.StatusOK},
		{"ready", "/ready", nil, http.StatusOK},
		{"not ready", "/ready", errors.New("server selection timeout"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := httprouter.New()
			NewHealthHandler(mockPinger{err: tt.pingErr}, testLogger()).RegisterRoutes(router)

			rec := serve(router, http.MethodGet, tt.path, "")
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
