package utils

//run redis
//docker run -p 6379:6379 -d redis

//swagger init
//swag init -g cmd/api/main.go --parseDependency --parseInternal --dir ./ --output ./cmd/api/docs

//try it
//curl -c jar -b jar -F files=@notes.pdf localhost:3000/summarize
//curl -c jar -b jar -H 'Content-Type: application/json' -d '{"question":"What is osmosis?"}' localhost:3000/chat
//curl -c jar -b jar -X POST localhost:3000/quiz
