package renderer

// objectVertexShader transforms by MVP and passes world-space normals.
const objectVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec4 aColor;
layout (location = 3) in vec2 aTexCoord;

uniform mat4 uMVP;
uniform mat4 uNormalMatrix;

out vec3 vNormal;
out vec4 vColor;
out vec2 vTexCoord;

void main() {
    gl_Position = uMVP * vec4(aPosition, 1.0);
    vNormal = mat3(uNormalMatrix) * aNormal;
    vColor = aColor;
    vTexCoord = aTexCoord;
}
`

// objectFragmentShader lights the vertex color with one directional light.
const objectFragmentShader = `
#version 410 core

in vec3 vNormal;
in vec4 vColor;
in vec2 vTexCoord;

uniform vec3 uSunDir;
uniform vec3 uAmbient;

out vec4 FragColor;

void main() {
    vec3 n = normalize(vNormal);
    float diffuse = max(dot(n, normalize(uSunDir)), 0.0);
    vec3 lit = vColor.rgb * (uAmbient + (1.0 - uAmbient) * diffuse);
    FragColor = vec4(lit, vColor.a);
}
`
