package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"

	"github.com/infoaniket1007/Tutor-app/database"
	"github.com/infoaniket1007/Tutor-app/models"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

type MessagePayload struct {
	AppointmentID string `json:"appointment_id"`
	Content       string `json:"content"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *models.Message, 16)

// RunHub fans saved messages out to the appointment counterpart. A message
// always has exactly one recipient: the other party of the appointment.
func RunHub() {
	for {
		select {
		case client := <-Register:
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case message := <-Broadcast:
			var appointment models.Appointment
			if err := database.DB.First(&appointment, "id = ?", message.AppointmentID).Error; err != nil {
				log.Printf("Error fetching appointment %s for message fan-out: %v", message.AppointmentID, err)
				continue
			}

			recipientID := appointment.TeacherID
			if message.SenderID == appointment.TeacherID {
				recipientID = appointment.StudentID
			}

			clientsMu.RLock()
			conn, ok := clients[recipientID]
			clientsMu.RUnlock()
			if !ok {
				continue
			}

			if err := conn.WriteJSON(message); err != nil {
				log.Printf("Error sending message to client %s: %v", recipientID, err)
				conn.Close()
				clientsMu.Lock()
				if current, exists := clients[recipientID]; exists && current == conn {
					delete(clients, recipientID)
				}
				clientsMu.Unlock()
			}
		}
	}
}
