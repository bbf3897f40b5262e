package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/domain/services"
	"tableside/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// EventEnvelope is the data payload of one server-sent event.
type EventEnvelope struct {
	Order      OrderResponse `json:"order"`
	OccurredAt time.Time     `json:"occurredAt"`
}

// SSEServer streams order events to connected clients over server-sent
// events. Staff clients get every event; table clients only their channel.
//
// Each connection subscribes first and fetches its snapshot second, so no
// event can fall between the two. The snapshot is authoritative; an event
// delivered for a state the snapshot already contains carries the same
// version and is a no-op for the client.
type SSEServer struct {
	logger            *slog.Logger
	stream            ports.EventStream
	listOrdersHandler queries.ListOrdersQueryHandler
}

// NewSSEServer creates the event stream endpoints.
func NewSSEServer(
	logger *slog.Logger,
	stream ports.EventStream,
	listOrdersHandler queries.ListOrdersQueryHandler,
) *SSEServer {
	return &SSEServer{
		logger:            logger.With("component", "sse"),
		stream:            stream,
		listOrdersHandler: listOrdersHandler,
	}
}

// RegisterRoutes binds the streaming endpoints on the echo instance.
func (s *SSEServer) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/events/staff", s.StreamStaffEvents)
	e.GET("/api/events/tables/:tableNumber", s.StreamTableEvents)
}

// StreamStaffEvents handles GET /api/events/staff - the staff display feed.
func (s *SSEServer) StreamStaffEvents(ctx echo.Context) error {
	return s.streamChannel(ctx, services.StaffChannel, func(*order.Order) bool {
		return true
	})
}

// StreamTableEvents handles GET /api/events/tables/:tableNumber - one
// table's feed (orderReady notifications for that table).
func (s *SSEServer) StreamTableEvents(ctx echo.Context) error {
	tableNumber := ctx.Param("tableNumber")
	if tableNumber == "" {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Table number is required",
		})
	}

	return s.streamChannel(ctx, services.TableChannel(tableNumber), func(o *order.Order) bool {
		return o.TableNumber() == tableNumber
	})
}

// streamChannel runs one SSE connection: subscribe, snapshot, then relay
// events until the client disconnects.
func (s *SSEServer) streamChannel(
	ctx echo.Context,
	channel string,
	includeInSnapshot func(*order.Order) bool,
) error {
	response := ctx.Response()
	response.Header().Set(echo.HeaderContentType, "text/event-stream")
	response.Header().Set(echo.HeaderCacheControl, "no-cache")
	response.Header().Set(echo.HeaderConnection, "keep-alive")
	response.WriteHeader(http.StatusOK)

	// Subscribe before fetching the snapshot, so nothing published in
	// between is lost. The snapshot wins over anything received early.
	sub := s.stream.Subscribe(channel)
	defer sub.Close()

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		s.logger.Error("failed to load snapshot", "channel", channel, "error", err)
		return err
	}

	snapshot := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		if includeInSnapshot(o) {
			snapshot = append(snapshot, orderToResponse(o))
		}
	}

	if err = writeSSE(response, "snapshot", snapshot); err != nil {
		return err
	}

	s.logger.Info("client connected", "channel", channel)
	defer s.logger.Info("client disconnected", "channel", channel)

	done := ctx.Request().Context().Done()
	for {
		select {
		case <-done:
			return nil
		case event, ok := <-sub.Events():
			if !ok {
				return nil
			}

			envelope := EventEnvelope{
				Order:      orderToResponse(event.Order),
				OccurredAt: event.OccurredAt,
			}
			if err = writeSSE(response, event.Name, envelope); err != nil {
				return err
			}
		}
	}
}

// writeSSE emits one server-sent event frame and flushes it to the client.
func writeSSE(response *echo.Response, name string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintf(response, "event: %s\ndata: %s\n\n", name, payload); err != nil {
		return err
	}

	response.Flush()
	return nil
}
