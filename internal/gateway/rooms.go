package gateway

import (
    "context"
    "fmt"

    "github.com/example/meeting-room-web/internal/model"
)

// ListRooms returns the full room catalogue (GET /rooms).  The catalogue is
// served through the read cache when one is configured.
func (c *Client) ListRooms(ctx context.Context) ([]model.Room, error) {
    var rooms []model.Room
    if err := c.getJSONCached(ctx, "list rooms", "/rooms", "", &rooms); err != nil {
        return nil, err
    }
    return rooms, nil
}

// GetRoom returns a single room (GET /rooms/{id}).
func (c *Client) GetRoom(ctx context.Context, id int) (*model.Room, error) {
    var room model.Room
    if err := c.getJSON(ctx, "get room", fmt.Sprintf("/rooms/%d", id), "", &room); err != nil {
        return nil, err
    }
    return &room, nil
}
