package gen

//go:generate oapi-codegen -config oapi-codegen.yaml ../../../api-contract/openapi.yml
