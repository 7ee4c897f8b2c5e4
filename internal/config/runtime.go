package config

import "os"

// RuntimeConfig describes the Lambda execution environment, read from the
// standard environment variables the runtime injects. It is recomputed on
// every call rather than cached: the process may be frozen and thawed
// between invocations and nothing here is hot enough to memoize.
type RuntimeConfig struct {
	IsLambda        bool
	FunctionName    string
	FunctionVersion string
	MemoryMB        int
	Region          string
	RuntimeAPI      string
}

// GetRuntimeConfig returns the Lambda runtime configuration
func GetRuntimeConfig() *RuntimeConfig {
	api := os.Getenv("AWS_LAMBDA_RUNTIME_API")
	return &RuntimeConfig{
		IsLambda:        api != "" || os.Getenv("_LAMBDA_SERVER_PORT") != "",
		FunctionName:    os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
		FunctionVersion: os.Getenv("AWS_LAMBDA_FUNCTION_VERSION"),
		MemoryMB:        GetEnvAsInt("AWS_LAMBDA_FUNCTION_MEMORY_SIZE", 0),
		Region:          os.Getenv("AWS_REGION"),
		RuntimeAPI:      api,
	}
}

// IsLambdaRuntime detects if the application is running in AWS Lambda
func IsLambdaRuntime() bool {
	return GetRuntimeConfig().IsLambda
}

// GetDeploymentMode returns the current deployment mode
func GetDeploymentMode() string {
	if IsLambdaRuntime() {
		return "serverless"
	}
	return "server"
}
