// Package queue contains the background consumer that listens to the
// booking lifecycle queues and writes an audit trail to logs/booking.log.
package queue

import (
    "encoding/json"
    "errors"
    "fmt"
    "io"
    "log"
    "os"
    "path/filepath"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
)

// StartBookingConsumer connects to RabbitMQ, declares the booking.created
// and booking.cancelled queues (durable), and starts consuming both.
// Each message is appended to logs/booking.log in a single-line,
// human-friendly format.  The function runs a reconnect loop forever;
// processing errors are logged and the offending message is rejected
// without requeue so the server keeps operating.
func StartBookingConsumer() error {
    url := brokerURL()

    backoff := time.Second
    for {
        conn, err := amqp.Dial(url)
        if err != nil {
            log.Printf("booking-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
            time.Sleep(backoff)
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second // reset after successful connect

        if err := consumeLoop(conn); err != nil {
            log.Printf("booking-consumer: consume loop ended: %v; reconnecting", err)
            time.Sleep(2 * time.Second)
            continue
        }
    }
}

func consumeLoop(conn *amqp.Connection) error {
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(50, 0, false); err != nil {
        log.Printf("booking-consumer: set QoS failed: %v", err)
    }

    created, err := consume(ch, CreatedQueueName)
    if err != nil {
        return err
    }
    cancelled, err := consume(ch, CancelledQueueName)
    if err != nil {
        return err
    }

    for {
        select {
        case d, ok := <-created:
            if !ok {
                return errors.New("deliveries channel closed")
            }
            ackOrReject(d, handleCreated(d.Body))
        case d, ok := <-cancelled:
            if !ok {
                return errors.New("deliveries channel closed")
            }
            ackOrReject(d, handleCancelled(d.Body))
        }
    }
}

func consume(ch *amqp.Channel, name string) (<-chan amqp.Delivery, error) {
    if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
        return nil, fmt.Errorf("queue declare %s: %w", name, err)
    }
    msgs, err := ch.Consume(name, "", false, false, false, false, nil)
    if err != nil {
        return nil, fmt.Errorf("queue consume %s: %w", name, err)
    }
    return msgs, nil
}

func ackOrReject(d amqp.Delivery, err error) {
    if err != nil {
        log.Printf("booking-consumer: handle message failed: %v", err)
        _ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
        return
    }
    _ = d.Ack(false)
}

func handleCreated(body []byte) error {
    var ev BookingCreatedEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }
    return appendAuditLine(formatCreated(ev))
}

func handleCancelled(body []byte) error {
    var ev BookingCancelledEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }
    return appendAuditLine(formatCancelled(ev))
}

// formatCreated renders one audit line for a created booking.
func formatCreated(ev BookingCreatedEvent) string {
    return fmt.Sprintf("[%s] Booking created | booking_id=%d | user_id=%d | movie_id=%d | movie=%q | seats=%d | total=%.2f | show_time=%s\n",
        ev.BookingDate, ev.BookingID, ev.UserID, ev.MovieID, ev.MovieTitle, ev.NumberOfSeats, ev.TotalPrice, ev.ShowTime)
}

// formatCancelled renders one audit line for a cancelled booking.
func formatCancelled(ev BookingCancelledEvent) string {
    return fmt.Sprintf("[%s] Booking cancelled | booking_id=%d | user_id=%d | movie_id=%d | movie=%q\n",
        ev.CancelledAt, ev.BookingID, ev.UserID, ev.MovieID, ev.MovieTitle)
}

func appendAuditLine(line string) error {
    // Ensure logs directory exists
    if err := os.MkdirAll("logs", 0o755); err != nil {
        return fmt.Errorf("mkdir logs: %w", err)
    }
    fpath := filepath.Join("logs", "booking.log")
    f, err := os.OpenFile(fpath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
    if err != nil {
        return fmt.Errorf("open log file: %w", err)
    }
    defer f.Close()
    return writeAuditLine(f, line)
}

func writeAuditLine(w io.Writer, line string) error {
    if _, err := io.WriteString(w, line); err != nil {
        return fmt.Errorf("write log: %w", err)
    }
    return nil
}
