package queue

import (
    "encoding/json"
    "fmt"
    "log"
    "os"
    "path/filepath"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
)

// StartEntryConsumer connects to RabbitMQ, declares the entry.created queue
// (durable), and starts consuming messages. Each message is appended to
// logs/journal.log in a single-line, human-friendly format. The function
// runs a reconnect loop; it keeps running and logs any processing errors
// while rejecting the offending message so the service continues operating.
func StartEntryConsumer() {
    backoff := time.Second
    for {
        conn, err := amqp.Dial(brokerURL())
        if err != nil {
            log.Printf("entry-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
            time.Sleep(backoff)
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second // reset after successful connect

        if err := consumeLoop(conn); err != nil {
            log.Printf("entry-consumer: consume loop ended: %v; reconnecting", err)
            time.Sleep(2 * time.Second)
        }
        _ = conn.Close()
    }
}

func consumeLoop(conn *amqp.Connection) error {
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(50, 0, false); err != nil {
        log.Printf("entry-consumer: set QoS failed: %v", err)
    }

    if _, err := ch.QueueDeclare(entryQueueName, true, false, false, false, nil); err != nil {
        return fmt.Errorf("queue declare: %w", err)
    }

    msgs, err := ch.Consume(entryQueueName, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue consume: %w", err)
    }

    for d := range msgs {
        if err := handleMessage(d.Body); err != nil {
            log.Printf("entry-consumer: handle message failed: %v", err)
            _ = d.Nack(false, false)
            continue
        }
        _ = d.Ack(false)
    }
    return fmt.Errorf("delivery channel closed")
}

// handleMessage appends one journal line per event.
func handleMessage(body []byte) error {
    var ev EntryCreatedEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal event: %w", err)
    }

    if err := os.MkdirAll("logs", 0o755); err != nil {
        return fmt.Errorf("create logs dir: %w", err)
    }
    f, err := os.OpenFile(filepath.Join("logs", "journal.log"),
        os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
    if err != nil {
        return fmt.Errorf("open journal log: %w", err)
    }
    defer func() { _ = f.Close() }()

    line := fmt.Sprintf("%s entry=%s user=%s chars=%d analyzed=%t\n",
        ev.CreatedAt.UTC().Format(time.RFC3339), ev.EntryID, ev.UserID, ev.ContentLen, ev.HasAnalysis)
    if _, err := f.WriteString(line); err != nil {
        return fmt.Errorf("write journal log: %w", err)
    }
    return nil
}
