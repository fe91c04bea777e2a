package deadletter

import "time"

type DeadLetter struct {
	ProcessingContext ProcessingContext `json:"processing_context"`
	Source            Source            `json:"source"`
	Reason            Reason            `json:"reason"`
}

type ProcessingContext struct {
	Component Component `json:"component"`
	Time      time.Time `json:"time"`
	Host      string    `json:"host"`
}

type Component struct {
	Branch   string `json:"branch"`
	Revision string `json:"revision"`
}

type Source struct {
	Topic     string `json:"topic"`
	Partition int32  `json:"partition"`
	Offset    int64  `json:"offset"`
	Payload   []byte `json:"payload"`
}

type Reason struct {
	Category string `json:"category"`
	Error    string `json:"error"`
}
