//go:build tools

// Пакет tools фиксирует инструменты разработки.
// Код в proto/checkout/v1 генерируется из checkout_service.proto:
//
//	go install google.golang.org/protobuf/cmd/protoc-gen-go@v1.36.11
//	go install google.golang.org/grpc/cmd/protoc-gen-go-grpc@v1.5.1
//	protoc -I proto \
//		--go_out=proto --go_opt=paths=source_relative \
//		--go-grpc_out=proto --go-grpc_opt=paths=source_relative \
//		proto/checkout/v1/checkout_service.proto
//
// Проверка API поверх reflection:
//
//	grpcurl -plaintext -H 'x-customer-id: c-1' localhost:50051 list
//
// Генераторы ставятся через go install, поэтому импорты-заглушки не нужны.
package tools
