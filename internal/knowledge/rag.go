package knowledge

// RAGPack returns the built-in Retrieval-Augmented Generation pack. It is
// the richest pack Sage ships with: bootstrap falls back to it when a run
// reaches the bootstrap stage without any pack, and most tests use it.
func RAGPack() *DomainPack {
	return &DomainPack{
		Domain: "RAG",
		Taxonomy: []Concept{
			{
				ID:          "rag_basics",
				Name:        "RAG Fundamentals",
				Level:       0,
				Importance:  10,
				Subconcepts: []string{"retrieval", "generation", "augmentation"},
			},
			{
				ID:            "indexing",
				Name:          "Indexing",
				Level:         1,
				Importance:    9,
				Prerequisites: []string{"rag_basics"},
				Subconcepts:   []string{"chunking", "embedding", "vector_db", "metadata"},
			},
			{
				ID:            "chunking",
				Name:          "Chunking Strategy",
				Level:         2,
				Importance:    8,
				Prerequisites: []string{"indexing"},
				Subconcepts:   []string{"fixed_size", "semantic_chunking", "recursive_chunking"},
			},
			{
				ID:            "embedding",
				Name:          "Embedding Selection",
				Level:         2,
				Importance:    9,
				Core:          true,
				Prerequisites: []string{"indexing"},
				Subconcepts:   []string{"dense_vectors", "sparse_vectors", "multilingual", "domain_specific"},
			},
			{
				ID:            "retrieval",
				Name:          "Retrieval Strategy",
				Level:         1,
				Importance:    10,
				Core:          true,
				Prerequisites: []string{"rag_basics", "indexing"},
				Subconcepts:   []string{"similarity_search", "bm25", "hybrid_search", "mmr"},
			},
			{
				ID:            "reranking",
				Name:          "Reranking",
				Level:         2,
				Importance:    7,
				Prerequisites: []string{"retrieval"},
				Subconcepts:   []string{"cross_encoder", "llm_rerank", "relevance_scoring"},
			},
			{
				ID:            "generation",
				Name:          "Generation Stage",
				Level:         1,
				Importance:    9,
				Core:          true,
				Prerequisites: []string{"rag_basics"},
				Subconcepts:   []string{"prompting", "context_injection", "citation", "guardrails"},
			},
			{
				ID:            "evaluation",
				Name:          "Evaluation",
				Level:         1,
				Importance:    8,
				Prerequisites: []string{"rag_basics"},
				Subconcepts:   []string{"ragas", "faithfulness", "relevance", "answer_quality"},
			},
			{
				ID:            "optimization",
				Name:          "Optimization",
				Level:         2,
				Importance:    7,
				Prerequisites: []string{"retrieval", "generation"},
				Subconcepts:   []string{"latency", "cost", "caching", "batch_processing"},
			},
			{
				ID:            "deployment",
				Name:          "Deployment",
				Level:         2,
				Importance:    6,
				Prerequisites: []string{"optimization"},
				Subconcepts:   []string{"kubernetes", "serverless", "monitoring", "autoscaling"},
			},
		},
		Glossary: map[string]string{
			"RAG":               "Retrieval-Augmented Generation; improves LLM output quality by retrieving external knowledge before generating",
			"Chunking":          "Splitting documents into smaller units; affects retrieval efficiency and context quality",
			"Embedding":         "Converting text into high-dimensional vectors for semantic similarity computation",
			"Vector DB":         "A database that stores vector embeddings and serves similarity search (e.g. Pinecone, Weaviate, Qdrant)",
			"BM25":              "A keyword-based ranking algorithm; the canonical sparse retrieval method",
			"Hybrid Search":     "Combining dense vector search with sparse keyword search",
			"Cross-encoder":     "A reranking model that scores relevance by encoding query and document together",
			"RAGAS":             "A framework for evaluating RAG systems; measures faithfulness, answer relevance, and more",
			"MMR":               "Maximal Marginal Relevance; a retrieval algorithm balancing relevance with diversity",
			"Semantic Chunking": "Splitting documents along semantic boundaries instead of fixed sizes",
			"Dense Vectors":     "Meaning-based embeddings, produced by models like BERT or Sentence Transformers",
			"Sparse Vectors":    "Keyword-based representations such as TF-IDF or BM25 weights",
			"Reranking":         "Reordering initial retrieval results with a more precise model",
			"Context Injection": "Inserting retrieved documents into the generation prompt",
			"Guardrails":        "Mechanisms that keep LLM output safe and on-format",
			"Faithfulness":      "How well a generated answer sticks to the retrieved documents",
			"Answer Relevance":  "How well a generated answer addresses the question asked",
			"vLLM":              "A high-throughput LLM inference server built around PagedAttention",
			"TEI":               "Text Embeddings Inference; HuggingFace's embedding inference server",
			"Gateway API":       "The Kubernetes standard replacing Ingress for traffic routing",
		},
		QuestionBank: []Question{
			{
				ID:         "q1",
				ConceptID:  "rag_basics",
				Difficulty: 1,
				Prompt:     "What is the main purpose of the retrieval step in RAG?",
				Options: []string{
					"Finding relevant information in external knowledge sources",
					"Fine-tuning the LLM",
					"Classifying the user's question",
					"Scoring response quality",
				},
				CorrectIndex: 0,
			},
			{
				ID:         "q2",
				ConceptID:  "chunking",
				Difficulty: 2,
				Prompt:     "What is the advantage of semantic chunking?",
				Options: []string{
					"It is the simplest to implement",
					"It preserves context by splitting along meaning boundaries",
					"It always produces fixed-size chunks",
					"It requires no extra model",
				},
				CorrectIndex: 1,
			},
			{
				ID:         "q3",
				ConceptID:  "retrieval",
				Difficulty: 2,
				Prompt:     "Why is hybrid search effective?",
				Options: []string{
					"It only uses keyword matching",
					"It only uses semantic similarity",
					"It combines the strengths of keyword and vector search",
					"It is the fastest retrieval method",
				},
				CorrectIndex: 2,
			},
			{
				ID:         "q4",
				ConceptID:  "reranking",
				Difficulty: 3,
				Prompt:     "What is the downside of cross-encoder reranking?",
				Options: []string{
					"Low accuracy",
					"It is hard to implement",
					"High compute cost and added latency",
					"It only works with keyword search",
				},
				CorrectIndex: 2,
			},
			{
				ID:         "q5",
				ConceptID:  "evaluation",
				Difficulty: 2,
				Prompt:     "What does the RAGAS faithfulness metric measure?",
				Options: []string{
					"Retrieval speed",
					"Whether the generated answer is grounded in the retrieved documents",
					"User satisfaction",
					"System cost",
				},
				CorrectIndex: 1,
			},
		},
		ToolRecipes: []Recipe{
			{
				Name:  "basic_rag",
				Level: "beginner",
				Components: map[string]string{
					"chunking":  "fixed_size (500 chars)",
					"embedding": "OpenAI text-embedding-3-small",
					"vector_db": "Chroma (local)",
					"retrieval": "similarity search (k=3)",
					"reranking": "none",
					"llm":       "GPT-4o-mini",
				},
				Pros: []string{"simple to build", "low cost", "fast prototype"},
				Cons: []string{"limited accuracy", "weak multilingual support"},
			},
			{
				Name:  "production_rag",
				Level: "intermediate",
				Components: map[string]string{
					"chunking":  "semantic chunking",
					"embedding": "multilingual-e5-large",
					"vector_db": "Qdrant (cluster)",
					"retrieval": "hybrid search (k=10)",
					"reranking": "cross-encoder (top-3)",
					"llm":       "GPT-4o",
				},
				Pros: []string{"high accuracy", "multilingual", "scales out"},
				Cons: []string{"higher cost", "more moving parts"},
			},
			{
				Name:  "optimized_rag",
				Level: "advanced",
				Components: map[string]string{
					"chunking":  "adaptive semantic + hierarchical",
					"embedding": "domain-tuned model",
					"vector_db": "Pinecone (serverless)",
					"retrieval": "hybrid + MMR",
					"reranking": "LLM-based reranking",
					"llm":       "vLLM (self-hosted)",
					"extras":    "caching, query rewriting, self-querying",
				},
				Pros: []string{"best accuracy", "tuned performance", "fully customizable"},
				Cons: []string{"high complexity", "operational burden", "large upfront investment"},
			},
		},
		Version: "1.0",
	}
}
