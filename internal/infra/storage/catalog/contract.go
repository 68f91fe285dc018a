package catalog

import "github.com/Pawel-Truszkowski/SalonManager/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
