package handlers

import (
	"errors"
	"fmt"
	"log"

	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	config "github.com/infoaniket1007/Tutor-app/configs"
	"github.com/infoaniket1007/Tutor-app/database"
	"github.com/infoaniket1007/Tutor-app/services"
	"github.com/infoaniket1007/Tutor-app/websocket"
)

// ServeWs upgrades a connection into the messaging hub. The first frame must
// be an auth message carrying a valid token; after that every frame is a
// message addressed to one of the sender's approved appointments.
func ServeWs(c *websocketcontrib.Conn) {
	type AuthMessage struct {
		Type  string `json:"type"`
		Token string `json:"token"`
	}
	var authMsg AuthMessage
	if err := c.ReadJSON(&authMsg); err != nil || authMsg.Type != "auth" {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid or missing auth message"})
		c.Close()
		return
	}

	claims, err := parseToken(authMsg.Token)
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid token"})
		c.Close()
		return
	}

	userID, err := uuid.Parse(claims["user_id"].(string))
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid user ID"})
		c.Close()
		return
	}

	client := &websocket.Client{UserID: userID, Conn: c}
	websocket.Register <- client
	defer func() {
		websocket.Unregister <- client
		c.Close()
	}()

	for {
		var payload websocket.MessagePayload
		if err := c.ReadJSON(&payload); err != nil {
			if !websocketcontrib.IsCloseError(err, websocketcontrib.CloseGoingAway, websocketcontrib.CloseNormalClosure) {
				log.Printf("WebSocket read error for client %s: %v", userID, err)
			}
			break
		}

		appointmentID, err := uuid.Parse(payload.AppointmentID)
		if err != nil {
			_ = c.WriteJSON(fiber.Map{"error": "Invalid appointment ID"})
			continue
		}

		message, err := services.SaveAppointmentMessage(database.DB, appointmentID, userID, payload.Content)
		if err != nil {
			if errors.Is(err, services.ErrAppointmentNotFound) {
				_ = c.WriteJSON(fiber.Map{"error": "Appointment not found"})
			} else {
				log.Printf("Failed to save message for client %s: %v", userID, err)
				_ = c.WriteJSON(fiber.Map{"error": "Failed to save message"})
			}
			continue
		}

		websocket.Broadcast <- message
	}
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Config("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
