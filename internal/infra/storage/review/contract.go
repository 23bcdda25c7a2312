package review

import (
	"github.com/daleelashes/booking-service/pkg/dbmetrics"
)

// DBExecutor - интерфейс исполнителя запросов к базе данных
type DBExecutor = dbmetrics.DBExecutor
