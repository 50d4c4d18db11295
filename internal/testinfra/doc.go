// Package testinfra provides the postgres and mongo servers that backend
// integration tests run against.
//
// Servers are started once per test binary with testcontainers-go and
// removed by the testcontainers reaper when the binary exits. Each call to
// OpenPostgres or OpenMongo gets its own database, so packages may run in
// parallel against the same server.
//
// Running servers can be used instead of containers:
//
//	TEST_DB_HOST=localhost TEST_DB_PORT=5432 TEST_DB_USER=postgres TEST_DB_PASSWORD=postgres \
//	TEST_MONGO_URL=mongodb://localhost:27017 \
//	go test -tags integration ./internal/...
//
// Without either variable and without Docker the tests are skipped.
package testinfra
